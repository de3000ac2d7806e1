package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/internal/messages"
	"github.com/souldevsoul/majaz-sub001/internal/requests"
	pkgauth "github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/config"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/pagination"
)

type stubRequestsService struct{}

func (stubRequestsService) Authorize(ctx context.Context, requestID uuid.UUID, actor pkgauth.Actor) (*models.Request, error) {
	return nil, nil
}

func (stubRequestsService) Create(ctx context.Context, actor pkgauth.Actor, input requests.CreateRequestInput) (*requests.CreateRequestResult, error) {
	return &requests.CreateRequestResult{Request: &models.Request{ID: uuid.New()}}, nil
}

func (stubRequestsService) Get(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID) (*models.Request, error) {
	return &models.Request{ID: requestID, OwnerUserID: actor.ID}, nil
}

func (stubRequestsService) List(ctx context.Context, actor pkgauth.Actor, params pagination.Params) (*pagination.Page[models.Request], error) {
	params = params.Normalize()
	return &pagination.Page[models.Request]{Items: []models.Request{}, Page: params.Page, Limit: params.Limit}, nil
}

func (stubRequestsService) Transition(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID, target enums.RequestStatus) (*models.Request, error) {
	return &models.Request{ID: requestID, Status: target}, nil
}

func (stubRequestsService) SoftDelete(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID) error {
	return nil
}

type stubEventsService struct{}

func (stubEventsService) List(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error) {
	return []models.Event{}, nil
}

type stubMessagesService struct{}

func (stubMessagesService) Post(ctx context.Context, actor pkgauth.Actor, input messages.PostMessageInput) (*models.Message, error) {
	return &models.Message{ID: uuid.New(), RequestID: input.RequestID}, nil
}

func (stubMessagesService) List(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID) ([]models.Message, error) {
	return []models.Message{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{Secret: "router-test-secret", Issuer: "majaz-test"},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(testConfig(), nil, nil, nil, nil, stubRequestsService{}, stubMessagesService{}, nil, nil, stubEventsService{})
}

func mintToken(t *testing.T, cfg *config.Config, role enums.ActorRole) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), time.Hour, pkgauth.AccessTokenClaims{
		UserID:      uuid.New(),
		DisplayName: "Router Test",
		Role:        role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAPIRequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAPIAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(cfg, nil, nil, nil, nil, stubRequestsService{}, stubMessagesService{}, nil, nil, stubEventsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.ActorRoleCustomer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestOpsRoutesRejectCustomers(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(cfg, nil, nil, nil, nil, stubRequestsService{}, stubMessagesService{}, nil, nil, stubEventsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops/requests/"+uuid.NewString()+"/scrape", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.ActorRoleCustomer))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRequestEventsRouteIsAuthed(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(cfg, nil, nil, nil, nil, stubRequestsService{}, stubMessagesService{}, nil, nil, stubEventsService{})
	path := "/api/v1/requests/" + uuid.NewString() + "/events"

	anon := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, anon)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, path, nil)
	authed.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.ActorRoleCustomer))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestQuoteRequiresAuth(t *testing.T) {
	cfg := testConfig()
	router := NewRouter(cfg, nil, nil, nil, nil, stubRequestsService{}, stubMessagesService{}, nil, nil, stubEventsService{})
	body := `{"mode":"remote_assessment","serviceTier":"remote_24h","country":"AE","currency":"AED"}`

	anon := httptest.NewRequest(http.MethodPost, "/api/v1/requests/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, anon)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}

	authed := httptest.NewRequest(http.MethodPost, "/api/v1/requests/quote", strings.NewReader(body))
	authed.Header.Set("Authorization", "Bearer "+mintToken(t, cfg, enums.ActorRoleCustomer))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, authed)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}
