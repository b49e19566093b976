package session

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/core"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/port/validation"
	"github.com/google/uuid"
)

// Service implements the SessionUseCase interface
type Service struct {
	store     *Store
	validator validation.NodeValidator
	logger    core.Logger
}

// NewService creates a new session service
func NewService(store *Store, validator validation.NodeValidator, logger core.Logger) usecase.SessionUseCase {
	return &Service{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateSession opens a new session
func (s *Service) CreateSession(ctx context.Context) (uuid.UUID, error) {
	sess := s.store.Create()
	s.logger.Log(core.SeverityDebug, "Session %s created.", sess.ID())
	return sess.ID(), nil
}

// CloseSession discards a session and its pending errors
func (s *Service) CloseSession(ctx context.Context, id uuid.UUID) error {
	if !s.store.Delete(id) {
		return fmt.Errorf("session %s: %w", id, domainerr.ErrNotFound)
	}
	s.logger.Log(core.SeverityDebug, "Session %s closed.", id)
	return nil
}

// PendingErrors returns the records left by the session's last failed operation
func (s *Service) PendingErrors(ctx context.Context, id uuid.UUID) ([]*domainerr.Record, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domainerr.ErrNotFound)
	}
	return sess.PendingRecords(), nil
}

// SetNode validates node within the session and returns the operation status
func (s *Service) SetNode(ctx context.Context, id uuid.UUID, node entity.Node) (domainerr.Code, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return domainerr.CodeNotFound, fmt.Errorf("session %s: %w", id, domainerr.ErrNotFound)
	}

	sess.Begin()
	if code, ok := sess.CheckArg(node.Path == ""); !ok {
		return code, nil
	}

	var info *domainerr.Info
	info = s.validator.Validate(sess.Reporter(), info, node)
	if info.Empty() {
		s.logger.Log(core.SeverityInfo, "Node \"%s\" accepted in session %s.", node.Path, id)
	}

	return sess.Finalize(info), nil
}
