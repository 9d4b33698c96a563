package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/menubohq/menubo/internal/line"
	"github.com/menubohq/menubo/internal/storage"
)

// handleImage runs the staging half of the binding workflow: admin gate,
// content fetch, upload to a fresh pending path, then the target prompt.
// The upload happens strictly before the prompt, so any pending id a later
// postback carries names an object that already exists.
func (b *Bot) handleImage(ctx context.Context, event line.Event) error {
	userID := event.Source.UserID
	if !b.admins.IsAdmin(userID) {
		b.logger.Warn("image upload denied", slog.String("user_id", userID))
		return b.messenger.ReplyText(ctx, event.ReplyToken, msgAdminOnly)
	}

	content, err := b.messenger.GetMessageContent(ctx, event.Message.ID)
	if err != nil {
		// No user-visible reply on this path.
		return fmt.Errorf("fetch message content: %w", err)
	}

	pendingID := b.newPendingID()
	staged := pendingPath(pendingID)
	if err := b.store.Upload(ctx, staged, content, pendingContentType); err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}
	b.logger.Info("upload staged",
		slog.String("user_id", userID),
		slog.String("path", staged),
		slog.Int("bytes", len(content)),
	)

	actions := make([]line.PostbackAction, 0, b.registry.Len())
	for _, code := range b.registry.Codes() {
		actions = append(actions, line.PostbackAction{
			Label: code,
			Data:  encodePostback(pendingID, code),
		})
	}
	return b.messenger.ReplyButtons(ctx, event.ReplyToken, msgBindPrompt, msgBindPrompt, actions)
}

// handlePostback runs the promotion half: decode the callback data, resolve
// the target preset, copy the staged object over it, and confirm with a text
// reply followed by the bound image. Promotion is repeatable; nothing marks a
// pending id as consumed.
func (b *Bot) handlePostback(ctx context.Context, replyToken, data string) error {
	params, err := url.ParseQuery(data)
	if err != nil {
		b.logger.Warn("undecodable postback data", slog.String("data", data))
		return nil
	}
	pendingID := params.Get("pending")
	target := params.Get("target")
	if pendingID == "" || target == "" {
		return nil
	}

	targetPath, ok := b.registry.Lookup(target)
	if !ok {
		return b.messenger.ReplyText(ctx, replyToken, msgTargetNotFound)
	}

	if err := b.store.Copy(ctx, pendingPath(pendingID), targetPath); err != nil {
		// No user-visible reply on this path.
		return fmt.Errorf("promote %s to %s: %w", pendingID, target, err)
	}
	b.logger.Info("binding promoted",
		slog.String("pending_id", pendingID),
		slog.String("target", target),
	)

	if err := b.messenger.ReplyText(ctx, replyToken, fmt.Sprintf(msgBoundFormat, target)); err != nil {
		return err
	}
	return b.messenger.ReplyImage(ctx, replyToken, storage.PublicURL(b.opts.Bucket, targetPath))
}

func pendingPath(pendingID string) string {
	return pendingPrefix + pendingID + ".jpg"
}

func encodePostback(pendingID, target string) string {
	v := url.Values{}
	v.Set("pending", pendingID)
	v.Set("target", target)
	return v.Encode()
}
