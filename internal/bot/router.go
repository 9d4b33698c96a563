package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/menubohq/menubo/internal/line"
	"github.com/menubohq/menubo/internal/storage"
)

// HandleEvent dispatches one webhook event. Unknown event kinds, events
// without a reply token, and message events without a body are skipped
// without error.
func (b *Bot) HandleEvent(ctx context.Context, event line.Event) error {
	switch event.Kind {
	case line.EventMessage:
		if event.ReplyToken == "" || event.Message == nil {
			return nil
		}
		switch event.Message.Kind {
		case line.MessageText:
			return b.handleText(ctx, event.ReplyToken, event.Message.Text)
		case line.MessageImage:
			return b.handleImage(ctx, event)
		default:
			return nil
		}
	case line.EventPostback:
		if event.ReplyToken == "" || event.Postback == nil {
			return nil
		}
		return b.handlePostback(ctx, event.ReplyToken, event.Postback.Data)
	default:
		return nil
	}
}

// handleText answers a registry hit with the preset image and everything
// else with an echo.
func (b *Bot) handleText(ctx context.Context, replyToken, text string) error {
	trimmed := strings.TrimSpace(text)
	if path, ok := b.registry.Lookup(trimmed); ok {
		b.logger.Info("preset hit", slog.String("code", trimmed))
		return b.messenger.ReplyImage(ctx, replyToken, storage.PublicURL(b.opts.Bucket, path))
	}
	return b.messenger.ReplyText(ctx, replyToken, b.opts.EchoPrefix+trimmed)
}
