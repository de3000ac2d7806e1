package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(report).Error
}

// FindLatestByLanguage returns the newest generation for the language.
// Regenerations append rows, so "latest" is generated_at descending.
func (r *repository) FindLatestByLanguage(ctx context.Context, requestID uuid.UUID, language enums.ReportLanguage) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND language = ?", requestID, language).
		Order("generated_at DESC").
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// MarkSentIf flips sent_to_user false to true. The condition in the WHERE
// clause makes the flip happen at most once across concurrent readers.
func (r *repository) MarkSentIf(ctx context.Context, reportID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND sent_to_user = ?", reportID, false).
		Updates(map[string]any{
			"sent_to_user": true,
			"sent_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
