// Package bot routes decoded webhook events to the preset lookup and the
// admin image-binding workflow, and exposes the webhook HTTP handler.
package bot

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/menubohq/menubo/internal/line"
	"github.com/menubohq/menubo/internal/presets"
	"github.com/menubohq/menubo/internal/storage"
)

// User-facing reply texts, matching the service's Japanese audience.
const (
	msgAdminOnly      = "この操作は管理者のみ可能です。"
	msgTargetNotFound = "指定されたメッセージが見つかりません。"
	msgBindPrompt     = "どのメッセージに紐づけますか？"
	msgBoundFormat    = "画像を更新しました: %s"
)

const (
	pendingPrefix      = "uploads/"
	pendingContentType = "image/jpeg"
)

// Messenger is the reply/content surface of the LINE client the bot uses.
type Messenger interface {
	ReplyText(ctx context.Context, replyToken, text string) error
	ReplyImage(ctx context.Context, replyToken, imageURL string) error
	ReplyButtons(ctx context.Context, replyToken, altText, text string, actions []line.PostbackAction) error
	GetMessageContent(ctx context.Context, messageID string) ([]byte, error)
}

// AdminChecker reports whether a platform user id belongs to an admin.
type AdminChecker interface {
	IsAdmin(userID string) bool
}

// Options carries the per-deployment knobs of the Bot.
type Options struct {
	Bucket     string
	EchoPrefix string
}

// Bot holds the side-effect collaborators of the event handlers. All fields
// are read-only after construction, so one Bot serves concurrent deliveries.
type Bot struct {
	logger    *slog.Logger
	messenger Messenger
	store     storage.Provider
	registry  *presets.Registry
	admins    AdminChecker
	opts      Options

	// newPendingID is swapped in tests to make staged paths deterministic.
	newPendingID func() string
}

// New creates a Bot.
func New(log *slog.Logger, messenger Messenger, store storage.Provider, registry *presets.Registry, admins AdminChecker, opts Options) *Bot {
	if log == nil {
		log = slog.Default()
	}
	return &Bot{
		logger:       log.With(slog.String("component", "bot")),
		messenger:    messenger,
		store:        store,
		registry:     registry,
		admins:       admins,
		opts:         opts,
		newPendingID: func() string { return uuid.NewString() },
	}
}
