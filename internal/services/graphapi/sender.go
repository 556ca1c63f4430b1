// Package graphapi is the client for the vendor's message-send endpoint.
package graphapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// SendFailureCode is the code carried by errors from failed deliveries.
	SendFailureCode = -1

	// DefaultBaseURL is the production message-send API root.
	DefaultBaseURL = "https://graph.facebook.com/v19.0"

	// Default timeout for send requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// SendRequest is the wire shape of one outbound message.
type SendRequest struct {
	Recipient    Recipient `json:"recipient"`
	Message      *Message  `json:"message,omitempty"`
	SenderAction string    `json:"sender_action,omitempty"`
}

// Recipient identifies the conversation partner.
type Recipient struct {
	ID string `json:"id"`
}

// Message is the text body of an outbound send.
type Message struct {
	Text string `json:"text"`
}

// SendResponse is the vendor's decoded response to a successful send.
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// Sender delivers replies to the vendor send endpoint. An empty access token
// puts the sender in dry-run mode: no network calls are made and sends
// succeed with a nil response.
type Sender struct {
	client      *http.Client
	baseURL     string
	accessToken string
}

// NewSender creates a Sender. A nil client gets a default with a bounded
// timeout; an empty baseURL falls back to the production endpoint.
func NewSender(client *http.Client, baseURL, accessToken string) *Sender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Sender{
		client:      client,
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// DryRun reports whether the sender has no access token configured.
func (s *Sender) DryRun() bool {
	return s.accessToken == ""
}

// SendText delivers one text reply to recipientID. At most one attempt is
// made; there is no retry. In dry-run mode it returns (nil, nil) without
// touching the network.
func (s *Sender) SendText(ctx context.Context, recipientID, text string) (*SendResponse, error) {
	return s.post(ctx, SendRequest{
		Recipient: Recipient{ID: recipientID},
		Message:   &Message{Text: text},
	})
}

// SendAction delivers a sender action such as "mark_seen". Same delivery
// rules as SendText.
func (s *Sender) SendAction(ctx context.Context, recipientID, action string) error {
	_, err := s.post(ctx, SendRequest{
		Recipient:    Recipient{ID: recipientID},
		SenderAction: action,
	})
	return err
}

func (s *Sender) post(ctx context.Context, payload SendRequest) (*SendResponse, error) {
	if s.DryRun() {
		return nil, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send payload: %w", err)
	}

	endpoint := s.baseURL + "/me/messages?" + url.Values{"access_token": {s.accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to send endpoint: %w", err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("send endpoint returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var decoded SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to decode send response: %w", err),
		}
	}
	return &decoded, nil
}
