package bitrix

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

// BotProperties is the PROPERTIES block of an imbot.register call.
type BotProperties struct {
	Name         string `json:"NAME"`
	Color        string `json:"COLOR"`
	Email        string `json:"EMAIL"`
	Gender       string `json:"PERSONAL_GENDER"`
	WorkPosition string `json:"WORK_POSITION"`
}

// RegisterRequest is the imbot.register payload. Event URLs point back at
// this service's webhook endpoints.
type RegisterRequest struct {
	Code                string        `json:"CODE" validate:"required"`
	Type                string        `json:"TYPE"`
	EventMessageAdd     string        `json:"EVENT_MESSAGE_ADD" validate:"required,url"`
	EventWelcomeMessage string        `json:"EVENT_WELCOME_MESSAGE" validate:"required,url"`
	EventBotDelete      string        `json:"EVENT_BOT_DELETE" validate:"required,url"`
	Openline            string        `json:"OPENLINE"`
	Properties          BotProperties `json:"PROPERTIES"`
}

// NewRegisterRequest builds a registration payload for the given bot code
// and public handler base URL.
func NewRegisterRequest(botCode, handlerURL string) *RegisterRequest {
	base := HandlerBaseURL(handlerURL)
	return &RegisterRequest{
		Code:                botCode,
		Type:                BotType,
		EventMessageAdd:     base + "/bot/message",
		EventWelcomeMessage: base + "/bot/welcome",
		EventBotDelete:      base + "/bot/delete",
		Openline:            BotOpenline,
		Properties: BotProperties{
			Name:         BotName,
			Color:        BotColor,
			Email:        BotEmail,
			Gender:       BotGender,
			WorkPosition: BotWorkPosition,
		},
	}
}

// HandlerBaseURL normalizes a configured handler URL to the service root.
// A legacy PHP hook path or an already-qualified /bot/ route both reduce
// to the bare base URL.
func HandlerBaseURL(handlerURL string) string {
	base := strings.TrimRight(handlerURL, "/")
	base = strings.TrimSuffix(base, legacyHandlerSuffix)
	if idx := strings.LastIndex(base, "/bot/"); idx != -1 {
		base = base[:idx]
	}
	return strings.TrimRight(base, "/")
}

// RegisterBot registers the bot on the portal via imbot.register and
// returns the raw API result. Returns domain.ErrRegistrationFailed on
// transport or API errors.
func (c *Client) RegisterBot(ctx context.Context, token string, req *RegisterRequest) (json.RawMessage, error) {
	slog.Info(LogMsgRegisteringBot, "code", req.Code, "event_message_add", req.EventMessageAdd)

	result, err := c.callJSON(ctx, MethodBotRegister, token, req)
	if err != nil {
		slog.Error(LogMsgRegistrationFailed, "code", req.Code, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistrationFailed, err)
	}

	slog.Info(LogMsgBotRegistered, "code", req.Code, "result", string(result))
	return result, nil
}
