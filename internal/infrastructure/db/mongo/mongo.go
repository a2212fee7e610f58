package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voxdigify/crm-api/internal/infrastructure/config"
)

const defaultTimeout = 10 * time.Second

// Registry holds one database handle per entity group. It is constructed once
// at startup and passed into each repository, replacing module-level
// connections created as import-time side effects. Entity groups that share a
// connection string share the underlying client.
type Registry struct {
	clients map[string]*mongo.Client

	Users    *mongo.Database
	Leads    *mongo.Database
	Contacts *mongo.Database
	Accounts *mongo.Database
	Calls    *mongo.Database
	Meetings *mongo.Database
}

// NewRegistry connects every entity group, verifying each distinct URI with a
// ping before returning.
func NewRegistry(ctx context.Context, cfg config.MongoConfig) (*Registry, error) {
	r := &Registry{clients: make(map[string]*mongo.Client)}

	connect := func(uri string) (*mongo.Database, error) {
		if client, ok := r.clients[uri]; ok {
			return client.Database(cfg.Database), nil
		}

		connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(connectCtx)
			return nil, fmt.Errorf("mongo ping: %w", err)
		}

		r.clients[uri] = client
		return client.Database(cfg.Database), nil
	}

	var err error
	if r.Users, err = connect(cfg.LoginURI); err != nil {
		return nil, err
	}
	if r.Leads, err = connect(cfg.LeadsURI); err != nil {
		return nil, err
	}
	if r.Contacts, err = connect(cfg.ContactsURI); err != nil {
		return nil, err
	}
	if r.Accounts, err = connect(cfg.AccountsURI); err != nil {
		return nil, err
	}
	if r.Calls, err = connect(cfg.CallsURI); err != nil {
		return nil, err
	}
	if r.Meetings, err = connect(cfg.MeetingsURI); err != nil {
		return nil, err
	}

	return r, nil
}

// Ping verifies connectivity on every distinct client. Used by the readiness
// probe.
func (r *Registry) Ping(ctx context.Context) error {
	for uri, client := range r.clients {
		if err := client.Ping(ctx, nil); err != nil {
			return fmt.Errorf("ping %s: %w", uri, err)
		}
	}
	return nil
}

// Close disconnects every distinct client.
func (r *Registry) Close(ctx context.Context) error {
	var firstErr error
	for _, client := range r.clients {
		if err := client.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
