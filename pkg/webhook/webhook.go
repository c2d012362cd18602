package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/forumkit/go-discord-notify/pkg/format"
	"github.com/forumkit/go-discord-notify/pkg/interfaces/logger"
)

const (
	// MaxBodyRunes bounds the embed description; the chat service
	// rejects anything longer.
	MaxBodyRunes = 2048
	// MaxFooterRunes bounds the embed footer text.
	MaxFooterRunes = 2048

	// DefaultColor is the neutral gray used when a message carries no
	// explicit color, such as connection test sends.
	DefaultColor = 0xB3AFBC
)

// Message is one rendered notification ready to post.
type Message struct {
	// Color is the embed accent as an RGB integer. Zero means unset;
	// the client substitutes DefaultColor.
	Color  int
	Body   string
	Footer string
}

// Client posts messages to chat webhook URLs.
type Client struct {
	logger logger.Logger
	client *http.Client
}

type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient injects a custom HTTP client, bypassing the per-call
// timeout wiring. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New constructs a webhook client.
func New(opts ...Option) *Client {
	c := &Client{logger: &logger.Nop{}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type embed struct {
	Color       int     `json:"color"`
	Description string  `json:"description"`
	Footer      *footer `json:"footer,omitempty"`
}

type footer struct {
	Text string `json:"text"`
}

type payload struct {
	Embeds []embed `json:"embeds"`
}

var newlineRuns = regexp.MustCompile(`[\r\n]+`)

// Send validates, normalizes and posts msg to url. The connect timeout
// bounds dialing only; the request timeout bounds the whole exchange.
func (c *Client) Send(ctx context.Context, url string, msg Message, connectTimeout, requestTimeout time.Duration) error {
	if err := validateURL(url); err != nil {
		return err
	}
	return c.post(ctx, url, msg, connectTimeout, requestTimeout)
}

// ForceSend posts without URL validation, for destinations the caller
// already vetted at configuration time.
func (c *Client) ForceSend(ctx context.Context, url string, msg Message, connectTimeout, requestTimeout time.Duration) error {
	if strings.TrimSpace(url) == "" {
		return &ValidationError{Reason: "url is required"}
	}
	return c.post(ctx, url, msg, connectTimeout, requestTimeout)
}

func (c *Client) post(ctx context.Context, url string, msg Message, connectTimeout, requestTimeout time.Duration) error {
	body := normalize(msg.Body, MaxBodyRunes)
	if body == "" {
		return &ValidationError{Reason: "message body is required"}
	}

	e := embed{
		Color:       msg.Color,
		Description: body,
	}
	if e.Color == 0 {
		e.Color = DefaultColor
	}
	// An empty Footer means absence; a footer that is set but blank
	// after trimming is a caller mistake.
	if footerText := normalize(msg.Footer, MaxFooterRunes); footerText != "" {
		e.Footer = &footer{Text: footerText}
	} else if msg.Footer != "" {
		return &ValidationError{Reason: "footer must not be blank"}
	}

	raw, err := json.Marshal(payload{Embeds: []embed{e}})
	if err != nil {
		return &EncodingError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(raw)))
	if err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(connectTimeout, requestTimeout).Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	c.logger.Debug("webhook delivered",
		logger.Field{Key: "url", Value: MaskURL(url)},
		logger.Field{Key: "status", Value: resp.StatusCode},
	)
	return nil
}

func (c *Client) httpClient(connectTimeout, requestTimeout time.Duration) *http.Client {
	if c.client != nil {
		return c.client
	}
	dialer := &net.Dialer{Timeout: connectTimeout}
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}
}

// normalize trims, collapses newline runs to single spaces and bounds
// text to max code points.
func normalize(text string, max int) string {
	text = strings.TrimSpace(newlineRuns.ReplaceAllString(text, " "))
	return format.Truncate(text, max)
}

func validateURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &ValidationError{Reason: "url is required"}
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return &ValidationError{Reason: "url is not valid: " + err.Error()}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Reason: "url must be absolute http(s)"}
	}
	if parsed.Host == "" {
		return &ValidationError{Reason: "url must include a host"}
	}
	return nil
}
