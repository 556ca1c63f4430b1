// graph-mock is a local stand-in for the vendor message-send endpoint. Point
// GRAPH_API_URL at it during development to see outbound replies.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// SendRequest mirrors the body pagebot posts to /me/messages.
type SendRequest struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message *struct {
		Text string `json:"text"`
	} `json:"message"`
	SenderAction string `json:"sender_action"`
}

var messageCounter int

func sendHandler(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if req.Message != nil {
		log.Printf("send to %s: %q (token=%q)", req.Recipient.ID, req.Message.Text, r.URL.Query().Get("access_token"))
	} else {
		log.Printf("sender action for %s: %s", req.Recipient.ID, req.SenderAction)
	}

	messageCounter++
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"recipient_id": req.Recipient.ID,
		"message_id":   fmt.Sprintf("mock-mid-%d", messageCounter),
	})
}

func main() {
	http.HandleFunc("/me/messages", sendHandler)
	log.Println("Graph mock listening on :4001")
	log.Fatal(http.ListenAndServe(":4001", nil))
}
