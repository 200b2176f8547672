package sqlstore

import (
	"context"
	"fmt"

	"talentflow-backend/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type timelineRepo struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) domain.TimelineRepository {
	return &timelineRepo{db: db}
}

func (r *timelineRepo) Create(ctx context.Context, entry *domain.CandidateTimeline) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("sqlstore: create timeline entry: %w", err)
	}
	return nil
}

func (r *timelineRepo) CreateBatch(ctx context.Context, entries []domain.CandidateTimeline) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(entries, 500).Error; err != nil {
		return fmt.Errorf("sqlstore: create timeline entries: %w", err)
	}
	return nil
}

func (r *timelineRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.CandidateTimeline, error) {
	entries := []domain.CandidateTimeline{}
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("sqlstore: list timeline of candidate %d: %w", candidateID, err)
	}
	return entries, nil
}
