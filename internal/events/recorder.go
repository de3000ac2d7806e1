package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

// Recorder appends audit entries to a request's event log. Callers inside a
// transaction pass their tx so the entry commits or rolls back with the change
// it describes.
type Recorder struct {
	repo Repository
}

// NewRecorder builds an event recorder backed by the given repository.
func NewRecorder(repo Repository) (*Recorder, error) {
	if repo == nil {
		return nil, fmt.Errorf("events repository required")
	}
	return &Recorder{repo: repo}, nil
}

// Record appends one event. Entries are never updated or deleted afterwards.
func (r *Recorder) Record(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, eventType enums.EventType, description string, payload types.JSONMap) error {
	if requestID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "request id required")
	}
	if !eventType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid event type")
	}

	event := &models.Event{
		RequestID:   requestID,
		Type:        eventType,
		Description: description,
		Payload:     payload,
	}
	if err := r.repo.WithTx(tx).Create(ctx, event); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append event")
	}
	return nil
}
