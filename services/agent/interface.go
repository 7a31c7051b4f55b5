package agent

import (
	"context"

	"hoteldesk/models"
)

// Service is the core-facing boundary of the conversational agent. Concrete
// transports (HTTP today, telephony adapters tomorrow) only translate their
// native message format to and from these calls.
type Service interface {
	StartSession(ctx context.Context, userID string) (*models.StartSessionResponse, error)
	PostMessage(ctx context.Context, sessionID, text string) (string, error)
	GetHistory(ctx context.Context, sessionID string) ([]models.Turn, error)
	EndSession(ctx context.Context, sessionID string) error
}
