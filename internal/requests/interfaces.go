package requests

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/pagination"
)

// Repository defines persistence operations for the request aggregate.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, request *models.Request) (*models.Request, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Request, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params pagination.Params) (*pagination.Page[models.Request], error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from enums.RequestStatus, updates map[string]any) (bool, error)
	UpsertListing(ctx context.Context, listing *models.Listing) error
}

// Authorizer resolves a request and enforces access for the acting user.
// Existence is checked before ownership so a caller probing foreign ids sees
// forbidden, not a fake not-found.
type Authorizer interface {
	Authorize(ctx context.Context, requestID uuid.UUID, actor auth.Actor) (*models.Request, error)
}
