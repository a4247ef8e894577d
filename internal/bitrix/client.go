// Package bitrix implements the outbound Bitrix24 REST client: posting
// chat replies and registering the bot with a portal.
package bitrix

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cultiv-ai/b24bridge/internal/domain"
)

// Config holds the settings for the Bitrix24 REST client.
type Config struct {
	// Domain is the portal host, e.g. "example.bitrix24.com".
	Domain string
	// Timeout bounds each REST call.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. Only for
	// portals behind self-signed certificates; off by default.
	InsecureSkipVerify bool
}

// Client calls the Bitrix24 REST API of a single portal.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// apiResponse is the Bitrix24 REST envelope. A failed call carries
// error/error_description instead of result.
type apiResponse struct {
	Result           json.RawMessage `json:"result"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// NewClient creates a REST client for the configured portal.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		slog.Warn(LogMsgTLSVerifyDisabled, "domain", cfg.Domain)
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL: fmt.Sprintf("https://%s/rest", cfg.Domain),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// NewClientWithBaseURL creates a client against an explicit REST base URL.
// Used by tests and non-standard portal setups.
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendMessage posts a chat message via im.message.add, authenticated with
// the reply's access token. Returns domain.ErrDispatchFailed on transport
// or API errors.
func (c *Client) SendMessage(ctx context.Context, reply *domain.ReplyMessage) error {
	slog.Debug(LogMsgSendingMessage, "dialog_id", reply.DialogID)

	form := url.Values{}
	form.Set(ParamDialogID, reply.DialogID)
	form.Set(ParamMessage, reply.Message)

	_, err := c.callForm(ctx, MethodMessageAdd, reply.AccessToken, form)
	if err != nil {
		slog.Error(LogMsgMessageFailed, "dialog_id", reply.DialogID, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
	}

	slog.Info(LogMsgMessageSent, "dialog_id", reply.DialogID)
	return nil
}

// callForm posts an urlencoded form to the named REST method and decodes
// the response envelope.
func (c *Client) callForm(ctx context.Context, method, token string, form url.Values) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s?%s=%s", c.baseURL, method, ParamAuth, url.QueryEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, method)
}

// callJSON posts a JSON body to the named REST method and decodes the
// response envelope.
func (c *Client) callJSON(ctx context.Context, method, token string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s?%s=%s", c.baseURL, method, ParamAuth, url.QueryEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, method)
}

func (c *Client) do(req *http.Request, method string) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse %s response (status %d): %w", method, resp.StatusCode, err)
	}

	if envelope.Error != "" {
		return nil, fmt.Errorf("%s rejected: %s (%s)", method, envelope.Error, envelope.ErrorDescription)
	}

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%s returned status %d", method, resp.StatusCode)
	}

	return envelope.Result, nil
}
