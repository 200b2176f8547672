package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"
	"talentflow-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const defaultCandidatesPageSize = 50

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	timelineRepo  domain.TimelineRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	timelineRepo domain.TimelineRepository,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		timelineRepo:  timelineRepo,
		validate:      validate,
	}
}

// withJobs joins every candidate with its job; dangling references get a nil job.
func (u *candidateUsecase) withJobs(ctx context.Context, candidates []domain.Candidate) ([]domain.CandidateWithJob, error) {
	ids := make([]int64, 0, len(candidates))
	seen := make(map[int64]bool)
	for _, c := range candidates {
		if !seen[c.JobID] {
			seen[c.JobID] = true
			ids = append(ids, c.JobID)
		}
	}

	jobs, err := u.jobRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CandidateWithJob, len(candidates))
	for i, c := range candidates {
		out[i] = domain.CandidateWithJob{Candidate: c}
		if job, ok := jobs[c.JobID]; ok {
			out[i].Job = &job
		}
	}
	return out, nil
}

func (u *candidateUsecase) withJob(ctx context.Context, c *domain.Candidate) (*domain.CandidateWithJob, error) {
	joined, err := u.withJobs(ctx, []domain.Candidate{*c})
	if err != nil {
		return nil, err
	}
	return &joined[0], nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter) (*domain.PaginatedResult[domain.CandidateWithJob], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultCandidatesPageSize
	}

	pagination := domain.NewPagination(filter.Page, filter.PageSize, 0)
	candidates, total, err := u.candidateRepo.Fetch(ctx, domain.CandidateQuery{
		Search: filter.Search,
		Stage:  filter.Stage,
		JobID:  filter.JobID,
		Limit:  pagination.PageSize,
		Offset: pagination.Offset(),
	})
	if err != nil {
		return nil, apperror.Wrap("Failed to list candidates", err)
	}

	joined, err := u.withJobs(ctx, candidates)
	if err != nil {
		return nil, apperror.Wrap("Failed to list candidates", err)
	}

	return &domain.PaginatedResult[domain.CandidateWithJob]{
		Data:       joined,
		Pagination: domain.NewPagination(filter.Page, filter.PageSize, total),
	}, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.CandidateWithJob, error) {
	c, err := u.candidateRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	joined, err := u.withJob(ctx, c)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return joined, nil
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id int64, input domain.UpdateCandidateInput) (*domain.CandidateWithJob, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	prior, err := u.candidateRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return nil, apperror.Wrap("Failed to update candidate", err)
	}

	now := time.Now()
	fields := map[string]interface{}{"updated_at": now}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Stage != nil {
		fields["stage"] = *input.Stage
	}
	if input.JobID != nil {
		fields["job_id"] = *input.JobID
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Experience != nil {
		fields["experience"] = *input.Experience
	}

	if err := u.candidateRepo.Update(ctx, id, fields); err != nil {
		return nil, apperror.Wrap("Failed to update candidate", err)
	}

	if input.Stage != nil && *input.Stage != prior.Stage {
		note := fmt.Sprintf("Stage updated from %s to %s", prior.Stage, *input.Stage)
		if input.Notes != nil && *input.Notes != "" {
			note = *input.Notes
		}
		entry := &domain.CandidateTimeline{
			CandidateID: id,
			Stage:       *input.Stage,
			Timestamp:   now,
			Notes:       note,
		}
		if err := u.timelineRepo.Create(ctx, entry); err != nil {
			return nil, apperror.Wrap("Failed to update candidate", err)
		}
	}

	updated, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Wrap("Failed to update candidate", err)
	}
	joined, err := u.withJob(ctx, updated)
	if err != nil {
		return nil, apperror.Wrap("Failed to update candidate", err)
	}
	return joined, nil
}

func (u *candidateUsecase) GetTimeline(ctx context.Context, candidateID int64) ([]domain.CandidateTimeline, error) {
	entries, err := u.timelineRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return entries, nil
}
