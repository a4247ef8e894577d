package bitrix

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

func TestHandlerBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare base url",
			input:    "https://bot.cultiv.ai",
			expected: "https://bot.cultiv.ai",
		},
		{
			name:     "trailing slash stripped",
			input:    "https://bot.cultiv.ai/",
			expected: "https://bot.cultiv.ai",
		},
		{
			name:     "legacy php hook suffix stripped",
			input:    "https://bot.cultiv.ai/b24-hook.php",
			expected: "https://bot.cultiv.ai",
		},
		{
			name:     "bot route reduced to base",
			input:    "https://bot.cultiv.ai/bot/message",
			expected: "https://bot.cultiv.ai",
		},
		{
			name:     "nested path kept when not a bot route",
			input:    "https://example.com/hooks/bitrix",
			expected: "https://example.com/hooks/bitrix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandlerBaseURL(tt.input))
		})
	}
}

func TestNewRegisterRequest(t *testing.T) {
	req := NewRegisterRequest("cultiv_bot_001", "https://bot.cultiv.ai/b24-hook.php")

	assert.Equal(t, "cultiv_bot_001", req.Code)
	assert.Equal(t, BotType, req.Type)
	assert.Equal(t, "https://bot.cultiv.ai/bot/message", req.EventMessageAdd)
	assert.Equal(t, "https://bot.cultiv.ai/bot/welcome", req.EventWelcomeMessage)
	assert.Equal(t, "https://bot.cultiv.ai/bot/delete", req.EventBotDelete)
	assert.Equal(t, BotOpenline, req.Openline)
	assert.Equal(t, BotName, req.Properties.Name)
	assert.Equal(t, BotColor, req.Properties.Color)
}

func TestRegisterBot(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.URL.Query().Get(ParamAuth)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &gotBody))

			_, _ = w.Write([]byte(`{"result":42}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		req := NewRegisterRequest("cultiv_bot_001", "https://bot.cultiv.ai")

		result, err := client.RegisterBot(context.Background(), "reg-token", req)
		require.NoError(t, err)
		assert.Equal(t, "42", string(result))

		assert.Equal(t, "/"+MethodBotRegister, gotPath)
		assert.Equal(t, "reg-token", gotAuth)
		assert.Equal(t, "cultiv_bot_001", gotBody["CODE"])
		assert.Equal(t, "B", gotBody["TYPE"])
		assert.Equal(t, "https://bot.cultiv.ai/bot/message", gotBody["EVENT_MESSAGE_ADD"])
		assert.Equal(t, "N", gotBody["OPENLINE"])

		props, ok := gotBody["PROPERTIES"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, BotName, props["NAME"])
		assert.Equal(t, BotColor, props["COLOR"])
		assert.Equal(t, BotEmail, props["EMAIL"])
		assert.Equal(t, BotGender, props["PERSONAL_GENDER"])
		assert.Equal(t, BotWorkPosition, props["WORK_POSITION"])
	})

	t.Run("portal rejects registration", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"INVALID_TOKEN","error_description":"Unable to get application by token"}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		req := NewRegisterRequest("cultiv_bot_001", "https://bot.cultiv.ai")

		_, err := client.RegisterBot(context.Background(), "bad-token", req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRegistrationFailed))
		assert.Contains(t, err.Error(), "INVALID_TOKEN")
	})
}
