package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultAPIBase hosts the reply endpoint.
	DefaultAPIBase = "https://api.line.me"
	// DefaultDataAPIBase hosts the message content endpoint.
	DefaultDataAPIBase = "https://api-data.line.me"

	maxLoggedBody = 2048
)

// PostbackAction is one selectable button of a buttons template.
type PostbackAction struct {
	Label string
	Data  string
}

// Client sends replies and fetches message content, authenticated with the
// channel access token. Reply failures are logged and not returned: replies
// ride a one-time token and there is nothing useful a caller can do, so the
// reply methods are best-effort by contract.
type Client struct {
	logger      *slog.Logger
	http        *http.Client
	accessToken string
	apiBase     string
	dataAPIBase string
}

// NewClient creates a Client against the production LINE endpoints.
func NewClient(log *slog.Logger, httpClient *http.Client, accessToken string) *Client {
	return NewClientWithBase(log, httpClient, accessToken, DefaultAPIBase, DefaultDataAPIBase)
}

// NewClientWithBase creates a Client with explicit base URLs. Tests point
// these at local servers.
func NewClientWithBase(log *slog.Logger, httpClient *http.Client, accessToken, apiBase, dataAPIBase string) *Client {
	if log == nil {
		log = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		logger:      log.With(slog.String("component", "line")),
		http:        httpClient,
		accessToken: accessToken,
		apiBase:     apiBase,
		dataAPIBase: dataAPIBase,
	}
}

type replyRequest struct {
	ReplyToken string `json:"replyToken"`
	Messages   []any  `json:"messages"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imageMessage struct {
	Type               string `json:"type"`
	OriginalContentURL string `json:"originalContentUrl"`
	PreviewImageURL    string `json:"previewImageUrl"`
}

type templateMessage struct {
	Type     string          `json:"type"`
	AltText  string          `json:"altText"`
	Template buttonsTemplate `json:"template"`
}

type buttonsTemplate struct {
	Type    string           `json:"type"`
	Text    string           `json:"text"`
	Actions []postbackAction `json:"actions"`
}

type postbackAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Data  string `json:"data"`
}

// ReplyText sends a plain text reply.
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	return c.reply(ctx, replyToken, textMessage{Type: "text", Text: text})
}

// ReplyImage sends an image reply. Original and preview URLs are identical.
func (c *Client) ReplyImage(ctx context.Context, replyToken, imageURL string) error {
	return c.reply(ctx, replyToken, imageMessage{
		Type:               "image",
		OriginalContentURL: imageURL,
		PreviewImageURL:    imageURL,
	})
}

// ReplyButtons sends a buttons template with one postback action per entry.
func (c *Client) ReplyButtons(ctx context.Context, replyToken, altText, text string, actions []PostbackAction) error {
	wire := make([]postbackAction, len(actions))
	for i, a := range actions {
		wire[i] = postbackAction{Type: "postback", Label: a.Label, Data: a.Data}
	}
	return c.reply(ctx, replyToken, templateMessage{
		Type:    "template",
		AltText: altText,
		Template: buttonsTemplate{
			Type:    "buttons",
			Text:    text,
			Actions: wire,
		},
	})
}

// reply posts one message to the reply endpoint. A non-2xx response or
// transport error is logged with status and body and swallowed.
func (c *Client) reply(ctx context.Context, replyToken string, message any) error {
	payload, err := json.Marshal(replyRequest{ReplyToken: replyToken, Messages: []any{message}})
	if err != nil {
		return fmt.Errorf("encode reply: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v2/bot/message/reply", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("reply failed", slog.Any("error", err))
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("reply rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil
	}
	c.logger.Info("reply sent", slog.Int("status", resp.StatusCode))
	return nil
}

// GetMessageContent fetches the raw media bytes of a message by its content
// id. Unlike replies, failures here matter to the caller and are returned.
func (c *Client) GetMessageContent(ctx context.Context, messageID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v2/bot/message/%s/content", c.dataAPIBase, messageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch content status: %d", resp.StatusCode)
	}
	return data, nil
}
