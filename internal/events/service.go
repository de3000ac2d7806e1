package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/internal/requests"
	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
)

// Service exposes a request's audit trail to its owner and to operators.
type Service interface {
	List(ctx context.Context, actor auth.Actor, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error)
}

type service struct {
	repo  Repository
	guard requests.Authorizer
}

// NewService builds the event log read service.
func NewService(repo Repository, guard requests.Authorizer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("events repository required")
	}
	if guard == nil {
		return nil, fmt.Errorf("request authorizer required")
	}
	return &service{repo: repo, guard: guard}, nil
}

// List returns the events logged against a request, newest first when
// descending is set. A non-positive limit returns the full trail.
func (s *service) List(ctx context.Context, actor auth.Actor, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error) {
	if _, err := s.guard.Authorize(ctx, requestID, actor); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByRequest(ctx, requestID, limit, descending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list request events")
	}
	return rows, nil
}
