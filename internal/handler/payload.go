package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

// Bracketed form keys Bitrix24 uses for event deliveries. The portal sends
// either a JSON body or a PHP-style urlencoded form depending on the
// application settings, so both shapes must decode to the same event.
const (
	formKeyEvent            = "event"
	formKeyData             = "data"
	formKeyDialogID         = "data[PARAMS][DIALOG_ID]"
	formKeyFromUserID       = "data[PARAMS][FROM_USER_ID]"
	formKeyMessage          = "data[PARAMS][MESSAGE]"
	formKeyMessageID        = "data[PARAMS][MESSAGE_ID]"
	formKeyChatEntityData1  = "data[PARAMS][CHAT_ENTITY_DATA_1]"
	formKeyAuthAccessToken  = "auth[access_token]"
	formKeyAuthDomain       = "auth[domain]"
	formKeyAuthMemberID     = "auth[member_id]"
	formKeyAuthAppToken     = "auth[application_token]"
	formKeyBotPrefix        = "data[BOT]["
	formKeyBotTokenSuffixLC = "[access_token]"
)

// DecodeEvent parses an incoming webhook request body into an event.
// JSON bodies are decoded directly; urlencoded forms are mapped from
// Bitrix24's bracketed key convention. Returns domain.ErrMalformedPayload
// when neither shape parses.
func DecodeEvent(r *http.Request) (*domain.IncomingEvent, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var evt domain.IncomingEvent
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON body: %v", domain.ErrMalformedPayload, err)
		}
		return &evt, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: invalid form body: %v", domain.ErrMalformedPayload, err)
	}

	// Some portal configurations send the data section as a single JSON
	// string under the "data" key instead of bracketed keys
	if raw := r.PostFormValue(formKeyData); raw != "" {
		var data domain.EventData
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			return &domain.IncomingEvent{
				Event: r.PostFormValue(formKeyEvent),
				Data:  data,
				Auth: domain.EventAuth{
					AccessToken:      r.PostFormValue(formKeyAuthAccessToken),
					Domain:           r.PostFormValue(formKeyAuthDomain),
					MemberID:         r.PostFormValue(formKeyAuthMemberID),
					ApplicationToken: r.PostFormValue(formKeyAuthAppToken),
				},
			}, nil
		}
	}

	evt := &domain.IncomingEvent{
		Event: r.PostFormValue(formKeyEvent),
		Data: domain.EventData{
			Params: domain.MessageParams{
				DialogID:        r.PostFormValue(formKeyDialogID),
				FromUserID:      r.PostFormValue(formKeyFromUserID),
				Message:         r.PostFormValue(formKeyMessage),
				MessageID:       r.PostFormValue(formKeyMessageID),
				ChatEntityData1: r.PostFormValue(formKeyChatEntityData1),
			},
		},
		Auth: domain.EventAuth{
			AccessToken:      r.PostFormValue(formKeyAuthAccessToken),
			Domain:           r.PostFormValue(formKeyAuthDomain),
			MemberID:         r.PostFormValue(formKeyAuthMemberID),
			ApplicationToken: r.PostFormValue(formKeyAuthAppToken),
		},
	}

	if token := botTokenFromForm(r); token != "" {
		evt.Data.Bot = domain.BotList{{AccessToken: token}}
	}

	return evt, nil
}

// botTokenFromForm finds the bot access token in the BOT section of a
// bracketed form. The section is keyed by bot id, so the key is matched
// by prefix and suffix rather than exactly.
func botTokenFromForm(r *http.Request) string {
	for key, values := range r.PostForm {
		if !strings.HasPrefix(key, formKeyBotPrefix) || len(values) == 0 {
			continue
		}
		if strings.HasSuffix(strings.ToLower(key), formKeyBotTokenSuffixLC) {
			return values[0]
		}
	}
	return ""
}
