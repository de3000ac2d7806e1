package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, eventType enums.EventType, description string, payload types.JSONMap) error
}

// Delivery is what getReport hands back: inline HTML or a pointer to the
// rendered PDF, depending on the requested format.
type Delivery struct {
	Report *models.Report     `json:"report"`
	Format enums.ReportFormat `json:"format"`
	HTML   string             `json:"html,omitempty"`
	PDFURL *string            `json:"pdfUrl,omitempty"`
}

// Service delivers generated reports to the request owner.
type Service interface {
	Deliver(ctx context.Context, actor auth.Actor, requestID uuid.UUID, language enums.ReportLanguage, format enums.ReportFormat) (*Delivery, error)
}

type service struct {
	repo   Repository
	guard  requests.Authorizer
	tx     txRunner
	events eventRecorder
}

// NewService builds the report delivery service.
func NewService(repo Repository, guard requests.Authorizer, tx txRunner, events eventRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	if guard == nil {
		return nil, fmt.Errorf("request authorizer required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event recorder required")
	}
	return &service{repo: repo, guard: guard, tx: tx, events: events}, nil
}

func (s *service) Deliver(ctx context.Context, actor auth.Actor, requestID uuid.UUID, language enums.ReportLanguage, format enums.ReportFormat) (*Delivery, error) {
	if !language.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid report language")
	}
	if !format.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid report format")
	}

	if _, err := s.guard.Authorize(ctx, requestID, actor); err != nil {
		return nil, err
	}

	var delivery *Delivery
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		report, err := repo.FindLatestByLanguage(ctx, requestID, language)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "no report generated for this language yet")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load report")
		}
		flipped, err := repo.MarkSentIf(ctx, report.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark report sent")
		}
		if flipped {
			report.SentToUser = true
			if err := s.events.Record(ctx, tx, requestID, enums.EventReportSent, "report delivered to user", types.JSONMap{
				"reportId": report.ID,
				"language": language,
				"format":   format,
			}); err != nil {
				return err
			}
		}

		// A pdf request only yields a pointer when a rendition exists,
		// otherwise the stored HTML stands in as the renderable body.
		delivery = &Delivery{Report: report, Format: format}
		if format == enums.ReportFormatPDF && report.PDFURL != nil {
			delivery.PDFURL = report.PDFURL
		} else {
			delivery.HTML = report.HTMLContent
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}
