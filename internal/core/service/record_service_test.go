package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/pkg/logger"
)

type stubLeadRepo struct {
	leads []domain.Lead
	err   error
}

func (r *stubLeadRepo) FindAll(_ context.Context) ([]domain.Lead, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *stubLeadRepo) Insert(_ context.Context, rec domain.Lead) (domain.Lead, error) {
	if r.err != nil {
		return domain.Lead{}, r.err
	}
	created := rec.WithID(primitive.NewObjectID())
	r.leads = append(r.leads, created)
	return created, nil
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	for i, l := range r.leads {
		if l.ID.Hex() == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func newLeadService(repo *stubLeadRepo) *RecordService[domain.Lead] {
	return NewRecordService(repo, "lead",
		func(l domain.Lead) string { return l.Source }, logger.Init(logger.Options{}))
}

func TestRecordService_CreateAssignsID(t *testing.T) {
	repo := &stubLeadRepo{}
	svc := newLeadService(repo)

	created, err := svc.Create(context.Background(), domain.Lead{Name: "Acme lead", Source: "web"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatalf("expected generated id")
	}

	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Acme lead" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestRecordService_DeleteNotFound(t *testing.T) {
	svc := newLeadService(&stubLeadRepo{})

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordService_Summary(t *testing.T) {
	repo := &stubLeadRepo{leads: []domain.Lead{
		{Source: "web"},
		{Source: "referral"},
		{Source: "web"},
		{Source: "web"},
	}}
	svc := newLeadService(repo)

	counts, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if counts["web"] != 3 || counts["referral"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(counts))
	}
}

func TestRecordService_ListPropagatesError(t *testing.T) {
	wantErr := errors.New("connection reset")
	svc := newLeadService(&stubLeadRepo{err: wantErr})

	if _, err := svc.List(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if _, err := svc.Summary(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error from Summary, got %v", err)
	}
}
