package replypolicy

import (
	"testing"

	"github.com/pagebot/pagebot/internal/botconfig"
	"github.com/pagebot/pagebot/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultPolicy() *Policy {
	cfg := botconfig.Default()
	return New(cfg.Replies, cfg.DefaultReply)
}

func textEvent(text string) messaging.Event {
	return messaging.Event{Kind: messaging.KindText, SenderID: "U1", Text: text}
}

func TestPolicy_TextRules(t *testing.T) {
	t.Parallel()

	policy := newDefaultPolicy()

	tests := []struct {
		name      string
		text      string
		wantReply string
		wantSend  bool
	}{
		{name: "greeting", text: "hi", wantReply: "Hello there! How can I help you today?", wantSend: true},
		{name: "greeting case-insensitive", text: "Hello", wantReply: "Hello there! How can I help you today?", wantSend: true},
		{name: "greeting hey", text: "hey", wantReply: "Hello there! How can I help you today?", wantSend: true},
		{name: "help upper case", text: "HELP", wantReply: "I can respond to: hi, help, status. Anything else and I'll just echo it back.", wantSend: true},
		{name: "status", text: "status", wantReply: "All systems operational.", wantSend: true},
		{name: "status with whitespace", text: "  Status \n", wantReply: "All systems operational.", wantSend: true},
		{name: "fallback echoes verbatim", text: "banana", wantReply: "You said: banana", wantSend: true},
		{name: "fallback keeps original casing", text: "BaNaNa", wantReply: "You said: BaNaNa", wantSend: true},
		{name: "empty text yields nothing", text: "", wantSend: false},
		{name: "whitespace only yields nothing", text: "   ", wantSend: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := policy.ReplyTo(textEvent(tt.text))
			require.Equal(t, tt.wantSend, ok)
			if tt.wantSend {
				assert.Equal(t, tt.wantReply, reply)
			}
		})
	}
}

func TestPolicy_ConfiguredRepliesWin(t *testing.T) {
	t.Parallel()

	policy := New(map[string]string{
		"status": "custom status text",
		"ORDER":  "order received",
	}, "")

	reply, ok := policy.ReplyTo(textEvent("STATUS"))
	require.True(t, ok)
	assert.Equal(t, "custom status text", reply)

	// Configured keywords are matched case-insensitively on both sides.
	reply, ok = policy.ReplyTo(textEvent("order"))
	require.True(t, ok)
	assert.Equal(t, "order received", reply)

	// Built-in rules still apply for keywords the table does not cover.
	reply, ok = policy.ReplyTo(textEvent("help"))
	require.True(t, ok)
	assert.Equal(t, "I can respond to: hi, help, status. Anything else and I'll just echo it back.", reply)
}

func TestPolicy_EchoTemplateWithoutVerb(t *testing.T) {
	t.Parallel()

	policy := New(nil, "Got it, you wrote:")
	reply, ok := policy.ReplyTo(textEvent("banana"))
	require.True(t, ok)
	assert.Equal(t, "Got it, you wrote: banana", reply)
}

func TestPolicy_AttachmentAndPostback(t *testing.T) {
	t.Parallel()

	policy := newDefaultPolicy()

	t.Run("attachment reply ignores count", func(t *testing.T) {
		for _, count := range []int{1, 5} {
			reply, ok := policy.ReplyTo(messaging.Event{
				Kind:            messaging.KindAttachment,
				SenderID:        "U1",
				AttachmentCount: count,
			})
			require.True(t, ok)
			assert.Equal(t, "Sorry, I can't process attachments yet.", reply)
		}
	})

	t.Run("postback embeds payload", func(t *testing.T) {
		reply, ok := policy.ReplyTo(messaging.Event{
			Kind:            messaging.KindPostback,
			SenderID:        "U1",
			PostbackPayload: "BUY_1",
			HasPayload:      true,
		})
		require.True(t, ok)
		assert.Equal(t, "You tapped: BUY_1", reply)
	})

	t.Run("postback without payload uses placeholder", func(t *testing.T) {
		reply, ok := policy.ReplyTo(messaging.Event{
			Kind:     messaging.KindPostback,
			SenderID: "U1",
		})
		require.True(t, ok)
		assert.Equal(t, "You tapped: (no payload)", reply)
	})

	t.Run("empty payload uses placeholder too", func(t *testing.T) {
		reply, ok := policy.ReplyTo(messaging.Event{
			Kind:       messaging.KindPostback,
			SenderID:   "U1",
			HasPayload: true,
		})
		require.True(t, ok)
		assert.Equal(t, "You tapped: (no payload)", reply)
	})
}

func TestPolicy_NeverReplies(t *testing.T) {
	t.Parallel()

	policy := newDefaultPolicy()

	t.Run("echo events", func(t *testing.T) {
		_, ok := policy.ReplyTo(messaging.Event{
			Kind:     messaging.KindText,
			SenderID: "U1",
			Text:     "hello",
			IsEcho:   true,
		})
		assert.False(t, ok)
	})

	t.Run("missing sender id", func(t *testing.T) {
		_, ok := policy.ReplyTo(messaging.Event{
			Kind: messaging.KindText,
			Text: "hello",
		})
		assert.False(t, ok)
	})

	t.Run("unknown events", func(t *testing.T) {
		_, ok := policy.ReplyTo(messaging.Event{
			Kind:     messaging.KindUnknown,
			SenderID: "U1",
			RawKind:  "delivery receipt",
		})
		assert.False(t, ok)
	})
}
