// Package chat implements the companion conversation: per-user message
// history in the record store and the completion flow against the hosted
// chat service.
package chat

// Message roles. The wire values are part of the backup interchange format
// and mirror what the completion API expects.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one chat message. Immutable once created; a user's list is
// append-ordered, so the end of the list is newest.
type Message struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`

	// Timestamp is the creation time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// RecordID implements store.Record.
func (m Message) RecordID() string { return m.ID }

// SendRequest is the POST /api/chat body.
type SendRequest struct {
	Text string `json:"text"`
}

// SendResponse returns both sides of the exchange: the stored user message
// and the companion's reply.
type SendResponse struct {
	Message Message `json:"message"`
	Reply   Message `json:"reply"`
}
