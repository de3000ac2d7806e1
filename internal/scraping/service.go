package scraping

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	"github.com/souldevsoul/majaz-sub001/pkg/scraper"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, eventType enums.EventType, description string, payload types.JSONMap) error
}

// lifecycle is the slice of the request service the scrape step drives.
// Status writes stay behind the lifecycle authority.
type lifecycle interface {
	Authorize(ctx context.Context, requestID uuid.UUID, actor auth.Actor) (*models.Request, error)
	Transition(ctx context.Context, actor auth.Actor, requestID uuid.UUID, target enums.RequestStatus) (*models.Request, error)
}

// Service runs the scrape step of the pipeline for one request. Operators
// trigger it from the console once payment has landed.
type Service interface {
	Run(ctx context.Context, actor auth.Actor, requestID uuid.UUID) (*models.Listing, error)
}

type service struct {
	lifecycle lifecycle
	store     requests.Repository
	fetcher   scraper.Fetcher
	tx        txRunner
	events    eventRecorder
	logg      *logger.Logger
}

// NewService builds the scraping service.
func NewService(lc lifecycle, store requests.Repository, fetcher scraper.Fetcher, tx txRunner, events eventRecorder, logg *logger.Logger) (Service, error) {
	if lc == nil {
		return nil, fmt.Errorf("request lifecycle required")
	}
	if store == nil {
		return nil, fmt.Errorf("listing store required")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("scraper fetcher required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event recorder required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{lifecycle: lc, store: store, fetcher: fetcher, tx: tx, events: events, logg: logg}, nil
}

func (s *service) Run(ctx context.Context, actor auth.Actor, requestID uuid.UUID) (*models.Listing, error) {
	if !actor.IsOperator() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "scraping is operator only")
	}

	request, err := s.lifecycle.Authorize(ctx, requestID, actor)
	if err != nil {
		return nil, err
	}
	if request.Status != enums.RequestStatusPaymentReceived && request.Status != enums.RequestStatusScraping {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot scrape while request is %s", request.Status))
	}
	if request.Listing == nil || request.Listing.OriginURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request has no listing url to scrape")
	}
	originURL := request.Listing.OriginURL

	ctx = s.logg.WithAssessmentID(ctx, requestID.String())

	if request.Status == enums.RequestStatusPaymentReceived {
		if _, err := s.lifecycle.Transition(ctx, actor, requestID, enums.RequestStatusScraping); err != nil {
			return nil, err
		}
	}
	if err := s.events.Record(ctx, nil, requestID, enums.EventScrapingStarted, "listing scrape started", types.JSONMap{
		"url": originURL,
	}); err != nil {
		return nil, err
	}

	result, err := s.fetcher.Scrape(ctx, originURL)
	if err != nil {
		s.logg.Error(ctx, "listing scrape failed", err)
		if recErr := s.events.Record(ctx, nil, requestID, enums.EventScrapingFailed, "listing scrape failed", types.JSONMap{
			"url":   originURL,
			"error": err.Error(),
		}); recErr != nil {
			s.logg.Error(ctx, "scrape failure not recorded", recErr)
		}
		if _, trErr := s.lifecycle.Transition(ctx, actor, requestID, enums.RequestStatusFailed); trErr != nil {
			s.logg.Error(ctx, "request not marked failed after scrape error", trErr)
		}
		return nil, err
	}

	scrapedAt := time.Now().UTC()
	listing := &models.Listing{
		RequestID:  requestID,
		Source:     sourceFromURL(originURL),
		OriginURL:  originURL,
		RawPayload: result.HTML,
		PhotoURLs:  types.StringList(result.Metadata.Images),
		ScrapedAt:  &scrapedAt,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.store.WithTx(tx).UpsertListing(ctx, listing); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store scraped listing")
		}
		return s.events.Record(ctx, tx, requestID, enums.EventScrapingCompleted, "listing scrape completed", types.JSONMap{
			"url":    originURL,
			"source": listing.Source,
			"photos": len(listing.PhotoURLs),
		})
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.lifecycle.Transition(ctx, actor, requestID, enums.RequestStatusParsing); err != nil {
		return nil, err
	}
	return listing, nil
}

func sourceFromURL(raw string) enums.ListingSource {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return enums.ListingSourceOther
	}
	return enums.ListingSourceFromHost(parsed.Host)
}
