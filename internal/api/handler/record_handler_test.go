package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

type stubLeadService struct {
	leads []domain.Lead
}

func (s *stubLeadService) List(_ context.Context) ([]domain.Lead, error) {
	return s.leads, nil
}

func (s *stubLeadService) Create(_ context.Context, rec domain.Lead) (domain.Lead, error) {
	created := rec.WithID(primitive.NewObjectID())
	s.leads = append(s.leads, created)
	return created, nil
}

func (s *stubLeadService) Delete(_ context.Context, id string) error {
	for i, l := range s.leads {
		if l.ID.Hex() == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (s *stubLeadService) Summary(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, l := range s.leads {
		counts[l.Source]++
	}
	return counts, nil
}

const validLeadBody = `{"name":"Jane","company":"Acme","email":"jane@acme.com","phone":"555-0100","source":"web","owner":"sales"}`

func TestRecordHandler_Create_Success(t *testing.T) {
	svc := &stubLeadService{}
	h := NewLeadHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/leads", validLeadBody)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created domain.Lead
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatalf("expected generated _id in response")
	}
	if created.Name != "Jane" || created.Source != "web" {
		t.Fatalf("unexpected lead: %+v", created)
	}
}

func TestRecordHandler_Create_MissingField(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/leads",
		`{"name":"Jane","company":"Acme"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestRecordHandler_Create_RejectsClientID(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/leads",
		`{"_id":"64f000000000000000000000","name":"Jane","company":"Acme","email":"jane@acme.com","phone":"555-0100","source":"web","owner":"sales"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestRecordHandler_Delete(t *testing.T) {
	lead := domain.Lead{Name: "Jane", Source: "web"}.WithID(primitive.NewObjectID())
	svc := &stubLeadService{leads: []domain.Lead{lead}}
	h := NewLeadHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/leads/"+lead.ID.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(lead.ID.Hex())

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.leads) != 0 {
		t.Fatalf("expected lead removed")
	}
}

func TestRecordHandler_Delete_Unknown(t *testing.T) {
	h := NewLeadHandler(&stubLeadService{})

	c, _ := newTestContext(t, http.MethodDelete, "/api/leads/unknown", "")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.Delete(c); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound passthrough, got %v", err)
	}
}

func TestRecordHandler_Summary(t *testing.T) {
	svc := &stubLeadService{leads: []domain.Lead{
		{Source: "web"}, {Source: "web"}, {Source: "referral"},
	}}
	h := NewLeadHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/leads/summary", "")

	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if counts["web"] != 2 || counts["referral"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestMeetingSchema_RejectsBadTime(t *testing.T) {
	req := createMeetingRequest{
		Title:       "Kickoff",
		From:        "not-a-time",
		To:          "2024-05-01T10:00",
		RelatedTo:   "Acme",
		ContactName: "Jane",
		Host:        "sales",
	}
	if _, err := req.ToDomain(); err == nil {
		t.Fatalf("expected parse error for bad time")
	}
}

func TestMeetingSchema_ParsesDatetimeLocal(t *testing.T) {
	req := createMeetingRequest{
		Title:       "Kickoff",
		From:        "2024-05-01T09:00",
		To:          "2024-05-01T10:00",
		RelatedTo:   "Acme",
		ContactName: "Jane",
		Host:        "sales",
	}
	m, err := req.ToDomain()
	if err != nil {
		t.Fatalf("ToDomain returned error: %v", err)
	}
	if !m.To.After(m.From) {
		t.Fatalf("expected to after from: %v %v", m.From, m.To)
	}
}
