// Package messaging holds the classified inbound event model shared by the
// webhook dispatcher and the reply policy.
package messaging

// Kind discriminates the inbound event variants.
type Kind string

const (
	KindText       Kind = "text"
	KindAttachment Kind = "attachment"
	KindPostback   Kind = "postback"
	KindUnknown    Kind = "unknown"
)

// Event is one classified inbound webhook event. It lives only for the
// duration of a single request's processing.
type Event struct {
	Kind     Kind
	SenderID string
	// MessageID is the vendor's message id (mid), used for dedupe.
	MessageID string
	// Text is the message text for KindText.
	Text string
	// IsEcho marks a redelivered copy of the bot's own message. Echoes must
	// never be replied to.
	IsEcho bool
	// AttachmentCount is the number of attachments for KindAttachment.
	AttachmentCount int
	// PostbackPayload is the button payload for KindPostback; HasPayload is
	// false when the vendor omitted it.
	PostbackPayload string
	HasPayload      bool
	// RawKind describes an unclassifiable event for logging.
	RawKind string
}
