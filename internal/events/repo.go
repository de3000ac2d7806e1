package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an events repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) ListByRequest(ctx context.Context, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error) {
	order := "created_at ASC"
	if descending {
		order = "created_at DESC"
	}

	var rows []models.Event
	query := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order(order)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
