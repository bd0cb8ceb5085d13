package service

import (
	"context"
	"errors"

	"ai-chartgen-be/internal/dto"
	"ai-chartgen-be/internal/pkg/logger"
	"ai-chartgen-be/internal/repository/memory"
	"ai-chartgen-be/pkg/generation"
	"ai-chartgen-be/pkg/invoker"
	"ai-chartgen-be/pkg/sanitize"
)

// ErrSessionNotFound marks a lookup of an expired or unknown session.
var ErrSessionNotFound = errors.New("session not found")

type ISessionService interface {
	GetSession(sessionID string) (*dto.GetSessionResponse, bool)
	// Ask answers a follow-up question grounded on the stored session text.
	Ask(ctx context.Context, sessionID string, req *dto.AskRequest) (*dto.AskResponse, error)
}

type sessionService struct {
	sessions    *memory.SessionRepository
	inv         *invoker.Invoker
	askAttempts int
	logger      logger.ILogger
}

func NewSessionService(
	sessions *memory.SessionRepository,
	inv *invoker.Invoker,
	askAttempts int,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessions:    sessions,
		inv:         inv,
		askAttempts: askAttempts,
		logger:      log,
	}
}

func (s *sessionService) GetSession(sessionID string) (*dto.GetSessionResponse, bool) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, false
	}
	return &dto.GetSessionResponse{
		Id:        session.Id,
		Text:      session.Text,
		FileNames: session.FileNames,
		CreatedAt: session.CreatedAt,
	}, true
}

type askAnswer struct {
	Answer string `json:"answer"`
}

func (s *sessionService) Ask(ctx context.Context, sessionID string, req *dto.AskRequest) (*dto.AskResponse, error) {
	session, found := s.sessions.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	prompt := generation.BuildFollowUpPrompt(sanitize.Wrap(req.Question), session.Text)
	answer, err := invoker.Invoke[askAnswer](ctx, s.inv, prompt, s.askAttempts, nil)
	if err != nil {
		s.logger.Error("session", "Follow-up answer failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &dto.AskResponse{
		SessionId: sessionID,
		Answer:    answer.Answer,
	}, nil
}
