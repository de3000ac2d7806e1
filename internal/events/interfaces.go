package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
)

// Repository defines persistence operations for the append-only event log.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, event *models.Event) error
	ListByRequest(ctx context.Context, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error)
}
