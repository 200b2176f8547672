package sqlstore

import (
	"context"
	"fmt"

	"talentflow-backend/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Job{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("sqlstore: count jobs: %w", err)
	}
	return n, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("sqlstore: create job: %w", err)
	}
	return nil
}

func (r *jobRepo) CreateBatch(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(jobs, 100).Error; err != nil {
		return fmt.Errorf("sqlstore: create jobs: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

func (r *jobRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Job, error) {
	out := make(map[int64]domain.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("sqlstore: get jobs by ids: %w", err)
	}
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out, nil
}

func (r *jobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&job).Error; err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, query domain.JobQuery) ([]domain.Job, error) {
	column := query.SortBy
	if column == "" {
		column = "order"
	}

	tx := r.db.WithContext(ctx).Model(&domain.Job{})
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: query.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: query.Desc})

	var jobs []domain.Job
	if err := tx.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("sqlstore: fetch jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepo) MaxOrder(ctx context.Context) (int, bool, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}, Desc: true}).
		Limit(1).Find(&job).Error
	if err != nil {
		return 0, false, fmt.Errorf("sqlstore: max job order: %w", err)
	}
	if job.ID == 0 {
		return 0, false, nil
	}
	return job.Order, true, nil
}

func (r *jobRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if err := updateByID(ctx, r.db, &domain.Job{}, id, fields); err != nil {
		if err == domain.ErrNotFound {
			return err
		}
		return fmt.Errorf("sqlstore: update job %d: %w", id, err)
	}
	return nil
}

func (r *jobRepo) UpdateOrders(ctx context.Context, ids []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := updateByID(ctx, tx, &domain.Job{}, id, map[string]interface{}{"order": i}); err != nil {
				return fmt.Errorf("sqlstore: set order of job %d: %w", id, err)
			}
		}
		return nil
	})
}
