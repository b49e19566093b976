package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cfgstore-diag/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/google/uuid"
)

// SessionUseCase defines the session operations exposed to adapters
type SessionUseCase interface {
	// CreateSession opens a new session
	CreateSession(ctx context.Context) (uuid.UUID, error)

	// CloseSession discards a session and its pending errors
	CloseSession(ctx context.Context, id uuid.UUID) error

	// PendingErrors returns the records left by the session's last failed operation
	PendingErrors(ctx context.Context, id uuid.UUID) ([]*domainerr.Record, error)

	// SetNode validates node within the session and returns the operation status
	SetNode(ctx context.Context, id uuid.UUID, node entity.Node) (domainerr.Code, error)
}
