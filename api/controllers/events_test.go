package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	pkgauth "github.com/souldevsoul/majaz-sub001/pkg/auth"
	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

type stubEventsService struct {
	limit      int
	descending bool
	rows       []models.Event
	err        error
}

func (s *stubEventsService) List(ctx context.Context, actor pkgauth.Actor, requestID uuid.UUID, limit int, descending bool) ([]models.Event, error) {
	s.limit = limit
	s.descending = descending
	return s.rows, s.err
}

func TestRequestEventListDefaultsToNewestFirst(t *testing.T) {
	id := uuid.New()
	svc := &stubEventsService{rows: []models.Event{}}
	handler := RequestEventList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+id.String()+"/events", nil)
	req = withRequestIDParam(authedRequest(req, pkgauth.Actor{ID: uuid.New(), Role: enums.ActorRoleCustomer}), id)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if !svc.descending {
		t.Fatal("expected newest-first ordering by default")
	}
	if svc.limit != 0 {
		t.Fatalf("expected no limit by default, got %d", svc.limit)
	}
}

func TestRequestEventListHonorsOrderAndLimit(t *testing.T) {
	id := uuid.New()
	svc := &stubEventsService{rows: []models.Event{}}
	handler := RequestEventList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+id.String()+"/events?order=asc&limit=5", nil)
	req = withRequestIDParam(authedRequest(req, pkgauth.Actor{ID: uuid.New(), Role: enums.ActorRoleCustomer}), id)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.descending {
		t.Fatal("expected ascending ordering when order=asc")
	}
	if svc.limit != 5 {
		t.Fatalf("expected limit 5 got %d", svc.limit)
	}
}

func TestRequestEventListRejectsBadQuery(t *testing.T) {
	id := uuid.New()
	for _, query := range []string{"?order=sideways", "?limit=-1", "?limit=nope"} {
		handler := RequestEventList(&stubEventsService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+id.String()+"/events"+query, nil)
		req = withRequestIDParam(authedRequest(req, pkgauth.Actor{ID: uuid.New(), Role: enums.ActorRoleCustomer}), id)

		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", query, resp.Code)
		}
	}
}
