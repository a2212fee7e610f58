package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voxdigify/crm-api/internal/api/metrics"
	"github.com/voxdigify/crm-api/internal/core/domain"
	"github.com/voxdigify/crm-api/internal/core/ports"
	"github.com/voxdigify/crm-api/internal/core/report"
)

// RecordService implements the shared CRUD and summary operations for one CRM
// entity. groupKey extracts the entity's grouping field (lead source, call
// owner, meeting host, ...) for the summary report.
type RecordService[T domain.Record[T]] struct {
	repo     ports.RecordRepository[T]
	entity   string
	groupKey func(T) string
	logger   zerolog.Logger
}

func NewRecordService[T domain.Record[T]](repo ports.RecordRepository[T], entity string, groupKey func(T) string, logger zerolog.Logger) *RecordService[T] {
	return &RecordService[T]{repo: repo, entity: entity, groupKey: groupKey, logger: logger}
}

func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.FindAll(ctx)
}

func (s *RecordService[T]) Create(ctx context.Context, rec T) (T, error) {
	created, err := s.repo.Insert(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("entity", s.entity).Msg("failed to create record")
		return created, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(s.entity).Inc()
	s.logger.Info().Str("entity", s.entity).Msg("record created")
	return created, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues(s.entity).Inc()
	s.logger.Info().Str("entity", s.entity).Str("id", id).Msg("record deleted")
	return nil
}

// Summary reduces the full collection into counts keyed by the entity's
// grouping field.
func (s *RecordService[T]) Summary(ctx context.Context) (map[string]int, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.GroupCount(rows, s.groupKey), nil
}
