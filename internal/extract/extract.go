// Package extract pulls the fields of interest out of an incoming bot
// message event: sender, dialog, message text, any URLs embedded in the
// text, the CRM deal bound to the chat, and the access token to reply with.
package extract

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

var (
	linkPattern = regexp.MustCompile(`https?://\S+`)
	dealPattern = regexp.MustCompile(`DEAL\|(\d+)`)
)

// validate holds the singleton validator instance for event payloads
var validate = validator.New(validator.WithRequiredStructEnabled())

// FromEvent extracts the reportable fields from an incoming event.
// Returns domain.ErrMalformedPayload when the required identifiers
// (dialog id, sender id) are missing.
func FromEvent(evt *domain.IncomingEvent) (*domain.ExtractedFields, error) {
	params := evt.Data.Params
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	return &domain.ExtractedFields{
		Text:        params.Message,
		DialogID:    params.DialogID,
		UserID:      params.FromUserID,
		Links:       Links(params.Message),
		DealID:      DealID(params.ChatEntityData1, params.Message),
		AccessToken: AccessToken(evt),
	}, nil
}

// Links returns every http(s) URL found in text, in order of appearance.
// Duplicates are preserved.
func Links(text string) []string {
	return linkPattern.FindAllString(text, -1)
}

// DealID returns the numeric deal id bound to the chat. Bitrix24 encodes
// it as "DEAL|<id>|..." in the chat entity data; some payloads carry the
// marker in the message text instead, so that is checked as a fallback.
// Returns "" when no deal is bound.
func DealID(entityData, text string) string {
	if m := dealPattern.FindStringSubmatch(entityData); m != nil {
		return m[1]
	}
	if m := dealPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// AccessToken returns the token to authenticate the reply with. The BOT
// array entry for the receiving bot takes precedence; the application
// auth token is the fallback.
func AccessToken(evt *domain.IncomingEvent) string {
	for _, bot := range evt.Data.Bot {
		if bot.AccessToken != "" {
			return bot.AccessToken
		}
	}
	return evt.Auth.AccessToken
}
