package models

// Message roles as the Gemini API understands them. Clients only persist
// user and model turns; system and tool turns never leave the server.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in a conversation. History is append-only and
// replayed by the client on every request; the server keeps no session state.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user model system tool"`
	Content string `json:"content" binding:"required"`
}

// ConverseRequest is the payload coming from the frontend into /api/assistant/converse.
type ConverseRequest struct {
	History []Message `json:"history"`
	Prompt  string    `json:"prompt" binding:"required"`
}

// ConverseResponse is what the assistant returns to the frontend. BookingNumber
// is only set when the model created a booking during this turn.
type ConverseResponse struct {
	Reply         string `json:"reply"`
	BookingNumber string `json:"bookingNumber,omitempty"`
}
