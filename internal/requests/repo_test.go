package requests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/pagination"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

func setupRequestsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	requests := `
CREATE TABLE IF NOT EXISTS requests (
  id TEXT PRIMARY KEY,
  owner_user_id TEXT NOT NULL,
  mode TEXT NOT NULL,
  tier TEXT NOT NULL,
  country TEXT NOT NULL,
  currency TEXT NOT NULL DEFAULT 'AED',
  service_fee_minor INTEGER NOT NULL,
  deposit_minor INTEGER,
  deposit_pct INTEGER,
  payment_intent_id TEXT,
  deposit_intent_id TEXT,
  sourcing_brief TEXT,
  status TEXT NOT NULL DEFAULT 'pending_payment',
  created_at DATETIME,
  updated_at DATETIME,
  completed_at DATETIME
);`
	listings := `
CREATE TABLE IF NOT EXISTS listings (
  id TEXT PRIMARY KEY,
  request_id TEXT NOT NULL UNIQUE,
  source TEXT NOT NULL DEFAULT 'other',
  origin_url TEXT NOT NULL,
  raw_payload TEXT,
  photo_urls TEXT,
  scraped_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(requests).Error)
	require.NoError(t, db.Exec(listings).Error)
	return db
}

func newRequest(t *testing.T, db *gorm.DB, owner uuid.UUID, status enums.RequestStatus, created time.Time) *models.Request {
	t.Helper()

	request := &models.Request{
		ID:              uuid.New(),
		OwnerUserID:     owner,
		Mode:            enums.ServiceModeRemoteAssessment,
		Tier:            enums.ServiceTierRemote24H,
		Country:         enums.CountryAE,
		Currency:        enums.CurrencyAED,
		ServiceFeeMinor: 8900,
		Status:          status,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

func TestRepositoryUpdateStatusIf(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)

	request := newRequest(t, db, uuid.New(), enums.RequestStatusPendingPayment, time.Now().UTC())

	changed, err := repo.UpdateStatusIf(context.Background(), request.ID, enums.RequestStatusPendingPayment, map[string]any{
		"status": enums.RequestStatusPaymentReceived,
	})
	require.NoError(t, err)
	assert.True(t, changed)

	// Stale expectation loses without error.
	changed, err = repo.UpdateStatusIf(context.Background(), request.ID, enums.RequestStatusPendingPayment, map[string]any{
		"status": enums.RequestStatusFailed,
	})
	require.NoError(t, err)
	assert.False(t, changed)

	var reloaded models.Request
	require.NoError(t, db.Where("id = ?", request.ID).First(&reloaded).Error)
	assert.Equal(t, enums.RequestStatusPaymentReceived, reloaded.Status)
}

func TestRepositoryListByOwnerPagination(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)

	owner := uuid.New()
	now := time.Now().UTC()
	oldest := newRequest(t, db, owner, enums.RequestStatusCompleted, now.Add(-2*time.Hour))
	middle := newRequest(t, db, owner, enums.RequestStatusScraping, now.Add(-time.Hour))
	newest := newRequest(t, db, owner, enums.RequestStatusPendingPayment, now)
	newRequest(t, db, uuid.New(), enums.RequestStatusPendingPayment, now)

	page, err := repo.ListByOwner(context.Background(), owner, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, newest.ID, page.Items[0].ID)
	assert.Equal(t, middle.ID, page.Items[1].ID)

	second, err := repo.ListByOwner(context.Background(), owner, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, oldest.ID, second.Items[0].ID)
}

func TestRepositoryUpsertListing(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)

	request := newRequest(t, db, uuid.New(), enums.RequestStatusPendingPayment, time.Now().UTC())

	placeholder := &models.Listing{
		ID:        uuid.New(),
		RequestID: request.ID,
		Source:    enums.ListingSourceDubizzle,
		OriginURL: "https://dubai.dubizzle.com/motors/1",
	}
	require.NoError(t, repo.UpsertListing(context.Background(), placeholder))

	scrapedAt := time.Now().UTC()
	full := &models.Listing{
		ID:         uuid.New(),
		RequestID:  request.ID,
		Source:     enums.ListingSourceDubizzle,
		OriginURL:  "https://dubai.dubizzle.com/motors/1",
		RawPayload: "<html>listing</html>",
		PhotoURLs:  types.StringList{"https://cdn.example/1.jpg"},
		ScrapedAt:  &scrapedAt,
	}
	require.NoError(t, repo.UpsertListing(context.Background(), full))

	var rows []models.Listing
	require.NoError(t, db.Where("request_id = ?", request.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "<html>listing</html>", rows[0].RawPayload)
	assert.NotNil(t, rows[0].ScrapedAt)
}
