package messenger

import (
	"context"
	"fmt"
	"sync"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pagebot/pagebot/internal/messaging"
	"github.com/pagebot/pagebot/internal/services/graphapi"
	"github.com/rs/zerolog"
)

// markSeenAction is sent before replying to a text message.
const markSeenAction = "mark_seen"

// ReplySender delivers replies to the vendor send endpoint.
type ReplySender interface {
	SendText(ctx context.Context, recipientID, text string) (*graphapi.SendResponse, error)
	SendAction(ctx context.Context, recipientID, action string) error
	DryRun() bool
}

// ReplyPolicy decides the reply text for a classified event.
type ReplyPolicy interface {
	ReplyTo(ev messaging.Event) (string, bool)
}

// Deduper remembers message ids so redelivered events are processed once.
type Deduper interface {
	Seen(messageID string) bool
}

// WebhookController handles the webhook handshake and inbound event posts.
type WebhookController struct {
	verifyToken string
	policy      ReplyPolicy
	sender      ReplySender
	seen        Deduper

	// inflight tracks background reply deliveries so tests can wait for them.
	inflight sync.WaitGroup
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(verifyToken string, policy ReplyPolicy, sender ReplySender, seen Deduper) *WebhookController {
	return &WebhookController{
		verifyToken: verifyToken,
		policy:      policy,
		sender:      sender,
		seen:        seen,
	}
}

// HandleEvents godoc
// @Summary      Receive webhook events
// @Description  Accepts a page webhook POST, classifies every messaging event and acknowledges immediately. Replies are delivered in the background; delivery failures never change the acknowledgment.
// @Tags         Webhook
// @Accept       json
// @Param        payload  body  WebhookPayload  true  "Webhook event batch"
// @Success      200  "Events accepted"
// @Failure      400  "Body malformed or object is not page"
// @Failure      500  "Internal error"
// @Router       /webhook [post]
func (d *WebhookController) HandleEvents(c *fiber.Ctx) error {
	var payload WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if payload.Object != ObjectPage {
		return richerrors.Error{
			ExternalMsg: fmt.Sprintf("Unsupported webhook object %q", payload.Object),
			Code:        fiber.StatusBadRequest,
		}
	}

	events := make([]messaging.Event, 0, len(payload.Entry))
	for _, entry := range payload.Entry {
		for _, raw := range entry.Messaging {
			events = append(events, Classify(raw))
		}
	}

	logger := zerolog.Ctx(c.UserContext()).With().
		Str("requestId", uuid.New().String()).
		Logger()
	logger.Debug().
		Int("entries", len(payload.Entry)).
		Int("events", len(events)).
		Msg("Webhook events received")

	// Acknowledge before delivery: the vendor retries the whole POST unless
	// it gets a fast 200, and delivery outcome must not affect the ack.
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()
		d.processEvents(context.Background(), logger, events)
	}()

	return c.SendStatus(fiber.StatusOK)
}

// Classify maps one raw messaging event onto exactly one event variant.
// A message with both text and attachments classifies as text.
func Classify(raw MessagingEvent) messaging.Event {
	ev := messaging.Event{SenderID: raw.Sender.ID}
	switch {
	case raw.Message != nil:
		ev.MessageID = raw.Message.MID
		ev.IsEcho = raw.Message.IsEcho
		if raw.Message.Text == "" && len(raw.Message.Attachments) > 0 {
			ev.Kind = messaging.KindAttachment
			ev.AttachmentCount = len(raw.Message.Attachments)
		} else {
			ev.Kind = messaging.KindText
			ev.Text = raw.Message.Text
		}
	case raw.Postback != nil:
		ev.Kind = messaging.KindPostback
		if raw.Postback.Payload != nil {
			ev.PostbackPayload = *raw.Postback.Payload
			ev.HasPayload = true
		}
	default:
		ev.Kind = messaging.KindUnknown
		ev.RawKind = "messaging event without message or postback"
	}
	return ev
}

func (d *WebhookController) processEvents(ctx context.Context, logger zerolog.Logger, events []messaging.Event) {
	for _, ev := range events {
		d.processEvent(ctx, logger, ev)
	}
}

func (d *WebhookController) processEvent(ctx context.Context, logger zerolog.Logger, ev messaging.Event) {
	if ev.Kind == messaging.KindUnknown {
		logger.Info().Str("rawKind", ev.RawKind).Msg("Skipping unclassified webhook event")
		return
	}
	if ev.IsEcho {
		logger.Debug().Str("mid", ev.MessageID).Msg("Skipping echo of our own message")
		return
	}
	if ev.SenderID == "" {
		logger.Warn().Str("mid", ev.MessageID).Msg("Skipping event without sender id")
		return
	}
	if d.seen.Seen(ev.MessageID) {
		logger.Debug().Str("mid", ev.MessageID).Msg("Skipping redelivered event")
		return
	}

	text, ok := d.policy.ReplyTo(ev)
	if !ok {
		return
	}

	if d.sender.DryRun() {
		logger.Info().
			Str("recipientId", ev.SenderID).
			Str("text", text).
			Msg("No page access token configured, reply not sent")
		return
	}

	if ev.Kind == messaging.KindText {
		if err := d.sender.SendAction(ctx, ev.SenderID, markSeenAction); err != nil {
			logger.Warn().Err(err).Str("recipientId", ev.SenderID).Msg("Failed to mark message seen")
		}
	}

	resp, err := d.sender.SendText(ctx, ev.SenderID, text)
	if err != nil {
		// Delivery is best-effort: log and move on, never retry.
		logger.Error().Err(err).Str("recipientId", ev.SenderID).Msg("Failed to deliver reply")
		return
	}
	logger.Info().
		Str("recipientId", ev.SenderID).
		Str("messageId", resp.MessageID).
		Msg("Reply delivered")
}
