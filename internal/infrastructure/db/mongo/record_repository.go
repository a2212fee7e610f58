package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voxdigify/crm-api/internal/core/domain"
)

// RecordRepository is the shared persistence implementation for the flat CRM
// entities. Each entity gets its own instance bound to its collection on its
// entity group's database handle.
type RecordRepository[T domain.Record[T]] struct {
	col       *mongo.Collection
	sortField string
}

// NewRecordRepository binds a repository to a collection. sortField is the
// recency field FindAll sorts on, descending ("_id" orders by insertion).
func NewRecordRepository[T domain.Record[T]](db *mongo.Database, collection, sortField string) *RecordRepository[T] {
	if sortField == "" {
		sortField = "_id"
	}
	return &RecordRepository[T]{col: db.Collection(collection), sortField: sortField}
}

func (r *RecordRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: r.sortField, Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}

	rows := []T{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return rows, nil
}

func (r *RecordRepository[T]) Insert(ctx context.Context, rec T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, rec)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		var zero T
		return zero, fmt.Errorf("insert %s: unexpected inserted id type %T", r.col.Name(), res.InsertedID)
	}
	return rec.WithID(oid), nil
}

func (r *RecordRepository[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like unknown ones: nothing to delete.
		return domain.ErrRecordNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
