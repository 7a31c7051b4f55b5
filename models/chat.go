package models

// StartSessionRequest is the payload for opening a new conversation.
type StartSessionRequest struct {
	UserID string `json:"userId,omitempty"`
}

// StartSessionResponse returns the opened session and its greeting.
type StartSessionResponse struct {
	SessionID    string `json:"sessionId"`
	Greeting     string `json:"greeting"`
	TicketNumber string `json:"ticketNumber"`
}

// ChatRequest is one inbound user utterance.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is the agent's reply to one utterance.
type ChatResponse struct {
	Response string `json:"response"`
}

// HistoryResponse is the ordered turn log of a session.
type HistoryResponse struct {
	SessionID string `json:"sessionId"`
	Turns     []Turn `json:"turns"`
}
