package messages

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
)

// Repository defines persistence operations for request message threads.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, message *models.Message) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]models.Message, error)
	MarkReadForOthers(ctx context.Context, requestID, readerID uuid.UUID) (int64, error)
}
