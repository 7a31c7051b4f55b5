package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hoteldesk/models"
	"hoteldesk/services/dialogue"
	"hoteldesk/services/session"
	"hoteldesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAgentService implements Service on top of a session store and the
// dialogue machine. Concurrent turns for the same session are serialized by
// a per-session mutex; the criteria read-modify-write is not atomic without
// it.
type DefaultAgentService struct {
	Store   session.Store
	Machine *dialogue.Machine

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDefaultAgentService(store session.Store, machine *dialogue.Machine) *DefaultAgentService {
	return &DefaultAgentService{
		Store:   store,
		Machine: machine,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *DefaultAgentService) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// StartSession creates a new conversation, assigns it a session id and a
// ticket number, and stores it with the greeting already logged.
func (s *DefaultAgentService) StartSession(ctx context.Context, userID string) (*models.StartSessionResponse, error) {
	sess := &models.ConversationSession{
		SessionID:    uuid.New().String(),
		UserID:       userID,
		TicketNumber: utils.NewTicketNumber(),
		CreatedAt:    time.Now(),
		State:        models.StateGreeting,
	}
	greeting := s.Machine.Greeting(sess)
	sess.AddTurn(models.RoleAssistant, greeting)

	if err := s.Store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store new session: %w", err)
	}

	utils.GetLogger().Info("conversation started",
		zap.String("sessionId", sess.SessionID),
		zap.String("ticket", sess.TicketNumber))

	return &models.StartSessionResponse{
		SessionID:    sess.SessionID,
		Greeting:     greeting,
		TicketNumber: sess.TicketNumber,
	}, nil
}

// PostMessage handles one inbound utterance to completion: extract,
// transition, compose. A malformed utterance never fails the call; the reply
// is a conversational re-prompt.
func (s *DefaultAgentService) PostMessage(ctx context.Context, sessionID, text string) (string, error) {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		// The lock entry was created before the id could be checked; drop
		// it again or the map grows with every bogus or expired id posted.
		if errors.Is(err, session.ErrUnknownSession) {
			s.dropLock(sessionID)
		}
		return "", err
	}

	sess.AddTurn(models.RoleUser, text)
	reply := s.Machine.Advance(sess, text)
	sess.AddTurn(models.RoleAssistant, reply)

	if err := s.Store.Put(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to persist session turn: %w", err)
	}
	return reply, nil
}

func (s *DefaultAgentService) GetHistory(ctx context.Context, sessionID string) ([]models.Turn, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Turns, nil
}

// EndSession removes the session. Ending an already-ended or unknown id is
// a no-op, so the call is idempotent.
func (s *DefaultAgentService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.dropLock(sessionID)
	return nil
}

func (s *DefaultAgentService) dropLock(sessionID string) {
	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()
}
