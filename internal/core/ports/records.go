package ports

import (
	"context"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

// RecordRepository defines the per-entity persistence operations. Every CRM
// entity supports the same three operations against its own collection.
type RecordRepository[T domain.Record[T]] interface {
	// FindAll returns every record, sorted descending by the entity's
	// recency field.
	FindAll(ctx context.Context) ([]T, error)
	// Insert stores the record and returns it with the generated identifier.
	Insert(ctx context.Context, rec T) (T, error)
	// Delete removes a record by identifier hex. Unknown or malformed
	// identifiers yield domain.ErrRecordNotFound.
	Delete(ctx context.Context, id string) error
}

// RecordService exposes the entity operations to the transport layer plus the
// group-by-count summary that feeds the entity's chart view.
type RecordService[T domain.Record[T]] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (map[string]int, error)
}
