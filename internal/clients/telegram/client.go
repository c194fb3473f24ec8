package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	DefaultTimeout = 10 * time.Second
)

var ErrEmptyToken = errors.New("bot token must be defined")

// Client is a minimal Telegram Bot API client: one POST per message, no retries.
type Client struct {
	token   Token
	baseURL string
	timeout time.Duration
	rest    *resty.Client
}

type ClientOption func(c *Client)

func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRestClient replaces the underlying HTTP client. Its timeout is overwritten.
func WithRestClient(r *resty.Client) ClientOption {
	return func(c *Client) {
		c.rest = r
	}
}

func NewClient(token Token, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	if c.rest == nil {
		c.rest = resty.New()
	}
	c.rest.SetTimeout(c.timeout)

	return c, nil
}

// SendMessage posts req to the sendMessage method and returns the decoded reply as is,
// whatever the HTTP status. Transport and decoding failures are returned as errors.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (Response, error) {
	if req.ParseMode == "" {
		req.ParseMode = ParseModeHTML
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.methodURL("sendMessage"))
	if err != nil {
		return nil, fmt.Errorf("post sendMessage: %w", err)
	}

	var result Response
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode sendMessage response (status %d): %w", resp.StatusCode(), err)
	}
	return result, nil
}

func (c *Client) methodURL(method string) string {
	return c.baseURL + "/bot" + c.token.S() + "/" + method
}

var textEscaper = strings.NewReplacer("+", "%20", "%2F", "/")

// BuildSendMessageURL builds a GET sendMessage URL for HTTP request blocks of the external
// XML bot. The text is percent-encoded with spaces as %20 and slashes kept.
func BuildSendMessageURL(token Token, chatID ChatID, message string) string {
	encoded := textEscaper.Replace(url.QueryEscape(message))
	return fmt.Sprintf("%s/bot%s/sendMessage?chat_id=%s&text=%s", DefaultBaseURL, token.S(), chatID.S(), encoded)
}
