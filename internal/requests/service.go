package requests

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/internal/quotes"
	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
	"github.com/souldevsoul/majaz-sub001/pkg/logger"
	"github.com/souldevsoul/majaz-sub001/pkg/pagination"
	"github.com/souldevsoul/majaz-sub001/pkg/payments"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventRecorder interface {
	Record(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, eventType enums.EventType, description string, payload types.JSONMap) error
}

// Service is the sole authority over a request's lifecycle. Every status
// write goes through Transition or SoftDelete so the audit log stays
// complete.
type Service interface {
	Authorizer
	Create(ctx context.Context, actor auth.Actor, input CreateRequestInput) (*CreateRequestResult, error)
	Get(ctx context.Context, actor auth.Actor, requestID uuid.UUID) (*models.Request, error)
	List(ctx context.Context, actor auth.Actor, params pagination.Params) (*pagination.Page[models.Request], error)
	Transition(ctx context.Context, actor auth.Actor, requestID uuid.UUID, target enums.RequestStatus) (*models.Request, error)
	SoftDelete(ctx context.Context, actor auth.Actor, requestID uuid.UUID) error
}

type service struct {
	repo    Repository
	tx      txRunner
	events  eventRecorder
	intents payments.IntentCreator
	logg    *logger.Logger
}

// feeTolerance is the largest client/server fee disagreement we accept, one
// cent in the request currency.
var feeTolerance = decimal.RequireFromString("0.01")

// NewService builds the request lifecycle service.
func NewService(repo Repository, tx txRunner, events eventRecorder, intents payments.IntentCreator, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("requests repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if events == nil {
		return nil, fmt.Errorf("event recorder required")
	}
	if intents == nil {
		return nil, fmt.Errorf("payment intent creator required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, tx: tx, events: events, intents: intents, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, actor auth.Actor, input CreateRequestInput) (*CreateRequestResult, error) {
	if actor.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	breakdown, err := quotes.Calculate(quotes.Input{
		Mode:           input.Mode,
		Tier:           input.Tier,
		Country:        input.Country,
		Currency:       input.Currency,
		IncludeDeposit: input.IncludeDeposit,
		MaxBid:         input.MaxBid,
	})
	if err != nil {
		return nil, err
	}
	if input.ServiceFee.Sub(breakdown.ServiceFee).Abs().GreaterThan(feeTolerance) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quoted service fee does not match current pricing").
			WithDetails(map[string]string{"expected": breakdown.ServiceFee.String()})
	}
	if input.Mode == enums.ServiceModeSourcing && (input.SourcingBrief == nil || *input.SourcingBrief == "") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sourcing requests need a brief")
	}

	request := &models.Request{
		OwnerUserID:     actor.ID,
		Mode:            input.Mode,
		Tier:            input.Tier,
		Country:         input.Country,
		Currency:        input.Currency,
		ServiceFeeMinor: minorUnits(breakdown.ServiceFee),
		SourcingBrief:   input.SourcingBrief,
		Status:          enums.RequestStatusPendingPayment,
	}
	if breakdown.Deposit.IsPositive() {
		depositMinor := minorUnits(breakdown.Deposit)
		request.DepositMinor = &depositMinor
		request.DepositPct = breakdown.DepositPct
	}

	// Payment intents come first so the row is persisted with its payment
	// references already attached. If the insert fails the unconfirmed
	// intents simply expire upstream.
	result := &CreateRequestResult{}
	feeIntent, err := s.intents.CreatePaymentIntent(ctx, request.ServiceFeeMinor, string(request.Currency),
		fmt.Sprintf("Majaz %s service fee", request.Tier))
	if err != nil {
		return nil, err
	}
	request.PaymentIntentID = &feeIntent.ID
	result.PaymentClientSecret = feeIntent.ClientSecret

	var depositIntent *payments.Intent
	if request.DepositMinor != nil {
		depositIntent, err = s.intents.CreatePaymentIntent(ctx, *request.DepositMinor, string(request.Currency),
			"Majaz refundable bidding deposit")
		if err != nil {
			return nil, err
		}
		request.DepositIntentID = &depositIntent.ID
		result.DepositClientSecret = &depositIntent.ClientSecret
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Create(ctx, request); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist request")
		}
		if err := s.events.Record(ctx, tx, request.ID, enums.EventRequestCreated, "request created", types.JSONMap{
			"mode":       request.Mode,
			"tier":       request.Tier,
			"currency":   request.Currency,
			"serviceFee": breakdown.ServiceFee.String(),
		}); err != nil {
			return err
		}
		if err := s.events.Record(ctx, tx, request.ID, enums.EventPaymentIntentCreated, "service fee payment intent created", types.JSONMap{
			"purpose":  "service_fee",
			"intentId": feeIntent.ID,
		}); err != nil {
			return err
		}
		if depositIntent != nil {
			if err := s.events.Record(ctx, tx, request.ID, enums.EventPaymentIntentCreated, "deposit payment intent created", types.JSONMap{
				"purpose":  "deposit",
				"intentId": depositIntent.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A placeholder listing lets the operator console show the origin URL
	// before the scrape runs. Losing it is not worth failing the request.
	if input.ListingURL != nil && *input.ListingURL != "" {
		listing := &models.Listing{
			RequestID: request.ID,
			Source:    sourceFromURL(*input.ListingURL),
			OriginURL: *input.ListingURL,
		}
		if err := s.repo.UpsertListing(ctx, listing); err != nil {
			s.logg.Warn(s.logg.WithAssessmentID(ctx, request.ID.String()), "placeholder listing not stored")
		}
	}

	result.Request = request
	return result, nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, requestID uuid.UUID) (*models.Request, error) {
	return s.Authorize(ctx, requestID, actor)
}

func (s *service) List(ctx context.Context, actor auth.Actor, params pagination.Params) (*pagination.Page[models.Request], error) {
	if actor.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	page, err := s.repo.ListByOwner(ctx, actor.ID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list requests")
	}
	return page, nil
}

func (s *service) Transition(ctx context.Context, actor auth.Actor, requestID uuid.UUID, target enums.RequestStatus) (*models.Request, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid target status")
	}

	var request *models.Request
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		loaded, err := s.authorizeWith(ctx, repo, requestID, actor)
		if err != nil {
			return err
		}
		request = loaded

		current := request.Status
		if current == target {
			return nil
		}
		if current.IsTerminal() {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("no transitions allowed from terminal status %s", current))
		}
		if !CanTransition(current, target) {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot move from %s to %s", current, target))
		}

		updates := map[string]any{"status": target}
		var completedAt *time.Time
		if target == enums.RequestStatusCompleted && request.CompletedAt == nil {
			now := time.Now().UTC()
			completedAt = &now
			updates["completed_at"] = now
		}

		changed, err := repo.UpdateStatusIf(ctx, request.ID, current, updates)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update request status")
		}
		if !changed {
			return pkgerrors.New(pkgerrors.CodeConflict, "request changed concurrently, retry")
		}

		if err := s.events.Record(ctx, tx, request.ID, enums.EventStatusChanged, "status changed", types.JSONMap{
			"oldStatus": current,
			"newStatus": target,
		}); err != nil {
			return err
		}

		request.Status = target
		if completedAt != nil {
			request.CompletedAt = completedAt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *service) SoftDelete(ctx context.Context, actor auth.Actor, requestID uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		request, err := s.authorizeWith(ctx, repo, requestID, actor)
		if err != nil {
			return err
		}

		// Deleting an already-terminal request acknowledges without
		// touching status so the operation stays idempotent.
		if request.Status.IsTerminal() {
			return nil
		}

		changed, err := repo.UpdateStatusIf(ctx, request.ID, request.Status, map[string]any{
			"status": enums.RequestStatusFailed,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark request failed")
		}
		if !changed {
			return pkgerrors.New(pkgerrors.CodeConflict, "request changed concurrently, retry")
		}

		return s.events.Record(ctx, tx, request.ID, enums.EventRequestDeleted, "request deleted by user", types.JSONMap{
			"deleted":        true,
			"previousStatus": request.Status,
			"actorId":        actor.ID,
		})
	})
}

// Authorize loads the request and enforces access. Missing ids surface as
// not-found before any ownership check runs.
func (s *service) Authorize(ctx context.Context, requestID uuid.UUID, actor auth.Actor) (*models.Request, error) {
	return s.authorizeWith(ctx, s.repo, requestID, actor)
}

func (s *service) authorizeWith(ctx context.Context, repo Repository, requestID uuid.UUID, actor auth.Actor) (*models.Request, error) {
	if actor.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if requestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request id required")
	}

	request, err := repo.FindByID(ctx, requestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load request")
	}
	if request.OwnerUserID != actor.ID && !actor.IsOperator() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "request belongs to another user")
	}
	return request, nil
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func sourceFromURL(raw string) enums.ListingSource {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return enums.ListingSourceOther
	}
	return enums.ListingSourceFromHost(parsed.Host)
}
