// Package session provides the conversation session store. The dialogue
// core only ever receives a session handle through this interface; it never
// touches shared state directly.
package session

import (
	"context"
	"errors"

	"hoteldesk/models"
)

// ErrUnknownSession is returned when a caller references a session id that
// does not exist or has expired.
var ErrUnknownSession = errors.New("session not found or expired")

// Store is the capability surface the service layer owns: get, put, delete.
// Expiry is handled by each implementation (TTL in Redis, lazy purge in
// memory).
type Store interface {
	Get(ctx context.Context, id string) (*models.ConversationSession, error)
	Put(ctx context.Context, sess *models.ConversationSession) error
	Delete(ctx context.Context, id string) error
}
