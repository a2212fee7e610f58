package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voxdigify/crm-api/internal/core/ports"
	"github.com/voxdigify/crm-api/internal/infrastructure/config"
	mongodb "github.com/voxdigify/crm-api/internal/infrastructure/db/mongo"
	"github.com/voxdigify/crm-api/internal/infrastructure/facebook"
	"github.com/voxdigify/crm-api/pkg/logger"
)

// testRegistry builds a registry over a lazily-connected client; the driver
// performs no I/O until an operation runs, so no server is needed.
func testRegistry(t *testing.T) *mongodb.Registry {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("lazy connect failed: %v", err)
	}
	db := client.Database("crm_test")
	return &mongodb.Registry{
		Users:    db,
		Leads:    db,
		Contacts: db,
		Accounts: db,
		Calls:    db,
		Meetings: db,
	}
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	var graph ports.GraphAPI = facebook.NewClient("http://127.0.0.1:0")
	cfg := &config.Config{Port: "8080", Env: "test", JWTSecret: "secret"}

	e := NewRouter(testRegistry(t), goredis.NewClient(&goredis.Options{}), graph, cfg, logger.Init(logger.Options{}))

	want := []string{
		http.MethodPost + " /auth/signup",
		http.MethodPost + " /auth/login",
		http.MethodGet + " /health",
		http.MethodGet + " /health/ready",
		http.MethodGet + " /metrics",
		http.MethodGet + " /auth/profile",
		http.MethodPut + " /auth/profile",
		http.MethodDelete + " /auth/profile",
		http.MethodGet + " /auth/users",
		http.MethodPut + " /auth/user/:id/role",
		http.MethodDelete + " /auth/user/:id",
		http.MethodGet + " /api/leads",
		http.MethodPost + " /api/leads",
		http.MethodDelete + " /api/leads/:id",
		http.MethodGet + " /api/leads/summary",
		http.MethodGet + " /api/contacts",
		http.MethodGet + " /api/clients",
		http.MethodGet + " /api/calls",
		http.MethodGet + " /api/meetings",
		http.MethodGet + " /api/pages/:page/posts",
		http.MethodGet + " /api/pages/:page/posts/:postID/comments",
		http.MethodGet + " /api/pages/:page/posts/:postID/likes",
		http.MethodGet + " /api/pages/:page/followers",
		http.MethodGet + " /api/pages/:page/analytics",
		http.MethodGet + " /api/instagram/insights",
	}

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route not registered: %s", route)
		}
	}

	// Same instance: unknown paths fall through to the error handler.
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rec.Code)
	}
}
