package requests

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a requests repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, request *models.Request) (*models.Request, error) {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Vehicle").
		Preload("Estimate").
		Preload("Reports", func(db *gorm.DB) *gorm.DB {
			return db.Order("generated_at DESC")
		}).
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*pagination.Page[models.Request], error) {
	params = params.Normalize()

	var total int64
	base := r.db.WithContext(ctx).Model(&models.Request{}).Where("owner_user_id = ?", ownerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []models.Request
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerID).
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &pagination.Page[models.Request]{
		Items:      rows,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalCount: total,
	}, nil
}

// UpdateStatusIf applies updates only while the row still holds the expected
// status. The boolean reports whether the row was actually changed, which is
// how concurrent transitions lose without blocking.
func (r *repository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from enums.RequestStatus, updates map[string]any) (bool, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) UpsertListing(ctx context.Context, listing *models.Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "request_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"source", "origin_url", "raw_payload", "photo_urls", "scraped_at", "updated_at",
			}),
		}).
		Create(listing).Error
}
