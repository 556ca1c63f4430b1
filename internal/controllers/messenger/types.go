package messenger

import "encoding/json"

// ObjectPage is the only top-level webhook object this service accepts.
const ObjectPage = "page"

// WebhookPayload is the body of a webhook POST from the vendor.
type WebhookPayload struct {
	Object string    `json:"object"`
	Entry  EntryList `json:"entry"`
}

// EntryList is a slice of entries that tolerates the vendor sending a single
// entry object instead of an array. Malformed or missing entry data decodes
// to an empty list rather than failing the request.
type EntryList []Entry

func (e *EntryList) UnmarshalJSON(data []byte) error {
	var list []Entry
	if err := json.Unmarshal(data, &list); err == nil {
		*e = list
		return nil
	}
	var single Entry
	if err := json.Unmarshal(data, &single); err == nil {
		*e = EntryList{single}
		return nil
	}
	*e = nil
	return nil
}

// Entry is one page entry inside a webhook payload.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is one raw event inside an entry. Exactly one of Message or
// Postback is expected to be set; anything else is classified as unknown.
type MessagingEvent struct {
	Sender    Principal        `json:"sender"`
	Recipient Principal        `json:"recipient"`
	Timestamp int64            `json:"timestamp"`
	Message   *MessagePayload  `json:"message,omitempty"`
	Postback  *PostbackPayload `json:"postback,omitempty"`
}

// Principal identifies a conversation participant.
type Principal struct {
	ID string `json:"id"`
}

// MessagePayload is the message part of an event.
type MessagePayload struct {
	MID         string       `json:"mid"`
	Text        string       `json:"text"`
	IsEcho      bool         `json:"is_echo"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment is one media attachment on a message.
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload carries the attachment content location.
type AttachmentPayload struct {
	URL string `json:"url"`
}

// PostbackPayload is the postback part of an event. Payload is a pointer so
// an omitted payload is distinguishable from an empty one.
type PostbackPayload struct {
	Title   string  `json:"title"`
	Payload *string `json:"payload"`
}
