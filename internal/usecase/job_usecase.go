package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"
	"talentflow-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const (
	defaultJobsPageSize = 10
	msgDuplicateSlug    = "Job with this slug already exists"
)

var errJobNotInOrder = errors.New("job not found")

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, validate: validate}
}

// parseJobSort turns "title" or "-createdAt" into a column and direction.
func parseJobSort(sort string) (string, bool, error) {
	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")
	if key == "" {
		key = "order"
	}
	column, ok := domain.JobSortFields[key]
	if !ok {
		return "", false, apperror.BadRequest("Invalid sort field: " + key)
	}
	return column, desc, nil
}

func matchesJobSearch(job domain.Job, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.Job], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultJobsPageSize
	}

	column, desc, err := parseJobSort(filter.Sort)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.Fetch(ctx, domain.JobQuery{Status: filter.Status, SortBy: column, Desc: desc})
	if err != nil {
		return nil, apperror.Wrap("Failed to list jobs", err)
	}

	if needle := strings.ToLower(strings.TrimSpace(filter.Search)); needle != "" {
		matched := jobs[:0]
		for _, j := range jobs {
			if matchesJobSearch(j, needle) {
				matched = append(matched, j)
			}
		}
		jobs = matched
	}

	pagination := domain.NewPagination(filter.Page, filter.PageSize, int64(len(jobs)))
	return &domain.PaginatedResult[domain.Job]{
		Data:       pageOf(jobs, pagination),
		Pagination: pagination,
	}, nil
}

// pageOf returns the slice of items covered by p, never nil.
func pageOf[T any](items []T, p domain.Pagination) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.PageSize < end-start {
		end = start + p.PageSize
	}
	return items[start:end]
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// slugTaken reports whether a job other than exceptID holds slug.
func (u *jobUsecase) slugTaken(ctx context.Context, slug string, exceptID int64) (bool, error) {
	existing, err := u.jobRepo.GetBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, input domain.CreateJobInput) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Title)
	}
	taken, err := u.slugTaken(ctx, slug, 0)
	if err != nil {
		return nil, apperror.Wrap("Failed to create job", err)
	}
	if taken {
		return nil, apperror.BadRequest(msgDuplicateSlug)
	}

	order := 0
	maxOrder, found, err := u.jobRepo.MaxOrder(ctx)
	if err != nil {
		return nil, apperror.Wrap("Failed to create job", err)
	}
	if found {
		order = maxOrder + 1
	}

	status := input.Status
	if status == "" {
		status = domain.JobStatusActive
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	job := &domain.Job{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Status:      status,
		Tags:        datatypes.JSONSlice[string](tags),
		Order:       order,
		CreatedAt:   time.Now(),
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Wrap("Failed to create job", err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, input domain.UpdateJobInput) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if _, err := u.jobRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Wrap("Failed to update job", err)
	}

	fields := map[string]interface{}{"updated_at": time.Now()}
	if input.Slug != nil {
		taken, err := u.slugTaken(ctx, *input.Slug, id)
		if err != nil {
			return nil, apperror.Wrap("Failed to update job", err)
		}
		if taken {
			return nil, apperror.BadRequest(msgDuplicateSlug)
		}
		fields["slug"] = *input.Slug
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Tags != nil {
		fields["tags"] = datatypes.JSONSlice[string](*input.Tags)
	}

	if err := u.jobRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Wrap("Failed to update job", err)
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Wrap("Failed to update job", err)
	}
	return job, nil
}

// reorderIndex is the insertion point of a moved job once it has been
// removed from a list of n remaining jobs. Moving forward lands one slot
// before toOrder.
func reorderIndex(fromOrder, toOrder, n int) int {
	idx := toOrder
	if fromOrder < toOrder {
		idx = toOrder - 1
	}
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	return idx
}

func (u *jobUsecase) ReorderJob(ctx context.Context, id int64, input domain.ReorderJobInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}

	jobs, err := u.jobRepo.Fetch(ctx, domain.JobQuery{SortBy: "order"})
	if err != nil {
		return apperror.Wrap("Failed to reorder job", err)
	}

	pos := -1
	for i, j := range jobs {
		if j.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return apperror.Wrap("Failed to reorder job", errJobNotInOrder)
	}

	ids := make([]int64, 0, len(jobs))
	for i, j := range jobs {
		if i != pos {
			ids = append(ids, j.ID)
		}
	}
	at := reorderIndex(input.FromOrder, input.ToOrder, len(ids))
	ids = append(ids[:at], append([]int64{id}, ids[at:]...)...)

	if err := u.jobRepo.UpdateOrders(ctx, ids); err != nil {
		return apperror.Wrap("Failed to reorder job", err)
	}
	return nil
}
