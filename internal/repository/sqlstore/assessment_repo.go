package sqlstore

import (
	"context"
	"fmt"

	"talentflow-backend/internal/domain"

	"gorm.io/gorm"
)

type assessmentRepo struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) domain.AssessmentRepository {
	return &assessmentRepo{db: db}
}

func (r *assessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("sqlstore: create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assessment, error) {
	var a domain.Assessment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *assessmentRepo) GetByJobID(ctx context.Context, jobID int64) (*domain.Assessment, error) {
	var a domain.Assessment
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *assessmentRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if err := updateByID(ctx, r.db, &domain.Assessment{}, id, fields); err != nil {
		if err == domain.ErrNotFound {
			return err
		}
		return fmt.Errorf("sqlstore: update assessment %d: %w", id, err)
	}
	return nil
}

type responseRepo struct {
	db *gorm.DB
}

func NewAssessmentResponseRepository(db *gorm.DB) domain.AssessmentResponseRepository {
	return &responseRepo{db: db}
}

func (r *responseRepo) Create(ctx context.Context, resp *domain.AssessmentResponse) error {
	if err := r.db.WithContext(ctx).Create(resp).Error; err != nil {
		return fmt.Errorf("sqlstore: create assessment response: %w", err)
	}
	return nil
}
