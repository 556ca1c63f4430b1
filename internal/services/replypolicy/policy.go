// Package replypolicy maps classified inbound events to canned reply text.
package replypolicy

import (
	"fmt"
	"strings"

	"github.com/pagebot/pagebot/internal/messaging"
)

const (
	attachmentReply    = "Sorry, I can't process attachments yet."
	postbackReply      = "You tapped: %s"
	postbackNoPayload  = "(no payload)"
	defaultEchoPattern = "You said: %s"
)

// rule is one (predicate, reply) pair over normalized text. Rules are
// evaluated in order; the first match wins.
type rule struct {
	matches func(normalized string) bool
	reply   func(original string) string
}

// Policy is the deterministic mapping from inbound events to reply text.
// Lookup is exact and case-insensitive; the echo rule is always last.
// A Policy is immutable after New and safe for concurrent use.
type Policy struct {
	rules []rule
}

// New builds a policy from the configured keyword reply table and echo
// template. Keywords from the table match whole normalized messages; the
// built-in greeting/help/status rules only apply when the table has no entry
// for their keywords.
func New(replies map[string]string, echoTemplate string) *Policy {
	table := make(map[string]string, len(replies))
	for kw, text := range replies {
		table[strings.ToLower(strings.TrimSpace(kw))] = text
	}
	if echoTemplate == "" {
		echoTemplate = defaultEchoPattern
	}

	rules := []rule{
		{
			matches: func(n string) bool { _, ok := table[n]; return ok && n != "" },
			reply: func(orig string) string {
				return table[normalize(orig)]
			},
		},
		{
			matches: oneOf("hi", "hello", "hey"),
			reply:   constant("Hello there! How can I help you today?"),
		},
		{
			matches: oneOf("help"),
			reply:   constant("I can respond to: hi, help, status. Anything else and I'll just echo it back."),
		},
		{
			matches: oneOf("status"),
			reply:   constant("All systems operational."),
		},
		{
			matches: func(n string) bool { return n != "" },
			reply: func(orig string) string {
				if strings.Contains(echoTemplate, "%s") {
					return fmt.Sprintf(echoTemplate, orig)
				}
				return echoTemplate + " " + orig
			},
		},
	}
	return &Policy{rules: rules}
}

// ReplyTo returns the reply text for an event and whether a reply should be
// sent at all. Echo events, events without a sender and unknown events never
// produce a reply.
func (p *Policy) ReplyTo(ev messaging.Event) (string, bool) {
	if ev.IsEcho || ev.SenderID == "" {
		return "", false
	}
	switch ev.Kind {
	case messaging.KindText:
		normalized := normalize(ev.Text)
		for _, r := range p.rules {
			if r.matches(normalized) {
				return r.reply(ev.Text), true
			}
		}
		return "", false
	case messaging.KindAttachment:
		return attachmentReply, true
	case messaging.KindPostback:
		payload := ev.PostbackPayload
		if !ev.HasPayload || payload == "" {
			payload = postbackNoPayload
		}
		return fmt.Sprintf(postbackReply, payload), true
	default:
		return "", false
	}
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func oneOf(keywords ...string) func(string) bool {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	return func(n string) bool {
		_, ok := set[n]
		return ok
	}
}

func constant(text string) func(string) string {
	return func(string) string { return text }
}
