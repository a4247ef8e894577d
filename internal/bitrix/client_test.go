package bitrix

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

func TestSendMessage(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		var gotMethod, gotPath, gotAuth, gotDialogID, gotMessage string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.URL.Query().Get(ParamAuth)

			require.NoError(t, r.ParseForm())
			gotDialogID = r.PostFormValue(ParamDialogID)
			gotMessage = r.PostFormValue(ParamMessage)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":12345}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(context.Background(), &domain.ReplyMessage{
			DialogID:    "chat456",
			Message:     "You said: hello",
			AccessToken: "tok-1",
		})

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/"+MethodMessageAdd, gotPath)
		assert.Equal(t, "tok-1", gotAuth)
		assert.Equal(t, "chat456", gotDialogID)
		assert.Equal(t, "You said: hello", gotMessage)
	})

	t.Run("non-200 success status accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"result":true}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(context.Background(), &domain.ReplyMessage{
			DialogID:    "chat456",
			Message:     "hi",
			AccessToken: "tok-1",
		})

		require.NoError(t, err)
	})

	t.Run("api error envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"DIALOG_ID_EMPTY","error_description":"Dialog ID can't be empty"}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(context.Background(), &domain.ReplyMessage{
			DialogID:    "chat456",
			Message:     "hi",
			AccessToken: "tok-1",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.Contains(t, err.Error(), "DIALOG_ID_EMPTY")
	})

	t.Run("non-200 without envelope error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(context.Background(), &domain.ReplyMessage{
			DialogID:    "1",
			Message:     "hi",
			AccessToken: "t",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(context.Background(), &domain.ReplyMessage{
			DialogID:    "1",
			Message:     "hi",
			AccessToken: "t",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
	})

	t.Run("context cancellation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		client := NewClientWithBaseURL(srv.URL, time.Second)
		err := client.SendMessage(ctx, &domain.ReplyMessage{
			DialogID:    "1",
			Message:     "hi",
			AccessToken: "t",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
	})
}

func TestNewClient(t *testing.T) {
	t.Run("base url from domain", func(t *testing.T) {
		client := NewClient(Config{Domain: "example.bitrix24.com"})
		assert.Equal(t, "https://example.bitrix24.com/rest", client.baseURL)
	})

	t.Run("default timeout applied", func(t *testing.T) {
		client := NewClient(Config{Domain: "example.bitrix24.com"})
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	})

	t.Run("insecure transport only when requested", func(t *testing.T) {
		secure := NewClient(Config{Domain: "a.example.com"})
		assert.Same(t, http.DefaultTransport, secure.httpClient.Transport)

		insecure := NewClient(Config{Domain: "a.example.com", InsecureSkipVerify: true})
		transport, ok := insecure.httpClient.Transport.(*http.Transport)
		require.True(t, ok)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
	})
}
