package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"talentflow-backend/internal/domain"

	"gorm.io/gorm"
)

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Candidate{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("sqlstore: count candidates: %w", err)
	}
	return n, nil
}

func (r *candidateRepo) CreateBatch(ctx context.Context, candidates []domain.Candidate) error {
	if len(candidates) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(candidates, 200).Error; err != nil {
		return fmt.Errorf("sqlstore: create candidates: %w", err)
	}
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	var c domain.Candidate
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// matchesCandidateSearch reports whether needle, already lowercased, occurs in
// the candidate's name or email. Folding happens in Go so non-ASCII letters
// compare the same on every driver.
func matchesCandidateSearch(c domain.Candidate, needle string) bool {
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle)
}

// window returns items[offset:offset+limit], clamped to the slice.
func window(items []domain.Candidate, limit, offset int) []domain.Candidate {
	if offset < 0 || offset >= len(items) {
		return []domain.Candidate{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func (r *candidateRepo) Fetch(ctx context.Context, query domain.CandidateQuery) ([]domain.Candidate, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Candidate{})
	if query.Stage != "" {
		tx = tx.Where("stage = ?", query.Stage)
	}
	if query.JobID > 0 {
		tx = tx.Where("job_id = ?", query.JobID)
	}
	tx = tx.Order("created_at DESC").Order("id DESC")

	if needle := strings.ToLower(strings.TrimSpace(query.Search)); needle != "" {
		var all []domain.Candidate
		if err := tx.Find(&all).Error; err != nil {
			return nil, 0, fmt.Errorf("sqlstore: fetch candidates: %w", err)
		}
		matched := all[:0]
		for _, c := range all {
			if matchesCandidateSearch(c, needle) {
				matched = append(matched, c)
			}
		}
		return window(matched, query.Limit, query.Offset), int64(len(matched)), nil
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("sqlstore: count candidates: %w", err)
	}
	if query.Limit > 0 {
		if int64(query.Offset) >= total {
			return []domain.Candidate{}, total, nil
		}
		tx = tx.Limit(query.Limit).Offset(query.Offset)
	}

	var candidates []domain.Candidate
	if err := tx.Find(&candidates).Error; err != nil {
		return nil, 0, fmt.Errorf("sqlstore: fetch candidates: %w", err)
	}
	return candidates, total, nil
}

func (r *candidateRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if err := updateByID(ctx, r.db, &domain.Candidate{}, id, fields); err != nil {
		if err == domain.ErrNotFound {
			return err
		}
		return fmt.Errorf("sqlstore: update candidate %d: %w", id, err)
	}
	return nil
}
