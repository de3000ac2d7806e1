package reports

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// Repository defines persistence operations for generated reports.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, report *models.Report) error
	FindLatestByLanguage(ctx context.Context, requestID uuid.UUID, language enums.ReportLanguage) (*models.Report, error)
	MarkSentIf(ctx context.Context, reportID uuid.UUID) (bool, error)
}
