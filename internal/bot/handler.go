package bot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menubohq/menubo/internal/line"
)

const webhookMaxBodyBytes int64 = 1 << 20 // 1 MiB

// EventHandler processes one decoded webhook event.
type EventHandler interface {
	HandleEvent(ctx context.Context, event line.Event) error
}

// Handler receives LINE webhook deliveries. Signature verification gates
// everything; once a delivery decodes, per-event failures are logged and the
// endpoint still answers 200 so the platform does not redeliver the batch.
type Handler struct {
	logger        *slog.Logger
	channelSecret string
	events        EventHandler
}

// NewHandler creates the webhook handler.
func NewHandler(log *slog.Logger, channelSecret string, events EventHandler) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		logger:        log.With(slog.String("handler", "webhook")),
		channelSecret: channelSecret,
		events:        events,
	}
}

// Register registers the webhook and liveness routes.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/webhook", h.Handle)
	e.GET("/", h.HandleProbe)
	e.GET("/healthz", h.HandleProbe)
}

// HandleProbe responds to liveness requests.
func (h *Handler) HandleProbe(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Handle processes one webhook delivery.
func (h *Handler) Handle(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, webhookMaxBodyBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read body")
	}
	if int64(len(body)) > webhookMaxBodyBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "payload too large")
	}

	signature := c.Request().Header.Get(line.SignatureHeader)
	if !line.ValidateSignature(h.channelSecret, body, signature) {
		h.logger.Warn("signature verification failed", slog.Bool("header_present", signature != ""))
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
	}

	var hook line.Webhook
	if err := json.Unmarshal(body, &hook); err != nil {
		h.logger.Error("undecodable webhook body", slog.Any("error", err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.logger.Info("delivery received", slog.Int("events", len(hook.Events)))
	for _, event := range hook.Events {
		if err := h.events.HandleEvent(c.Request().Context(), event); err != nil {
			h.logger.Error("event handling failed",
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)
		}
	}
	return c.NoContent(http.StatusOK)
}
