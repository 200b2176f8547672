package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"
	"talentflow-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// Submitted responses are scored uniformly in [minScore, minScore+scoreSpread).
const (
	minScore    = 60
	scoreSpread = 40
)

type assessmentUsecase struct {
	assessmentRepo domain.AssessmentRepository
	responseRepo   domain.AssessmentResponseRepository
	validate       *validator.Validate
	intn           func(n int) int
}

func NewAssessmentUsecase(
	assessmentRepo domain.AssessmentRepository,
	responseRepo domain.AssessmentResponseRepository,
	validate *validator.Validate,
) domain.AssessmentUsecase {
	return &assessmentUsecase{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		validate:       validate,
		intn:           rand.IntN,
	}
}

// GetAssessment returns nil without error when the job has no assessment.
func (u *assessmentUsecase) GetAssessment(ctx context.Context, jobID int64) (*domain.Assessment, error) {
	a, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return a, nil
}

func (u *assessmentUsecase) SaveAssessment(ctx context.Context, jobID int64, input domain.SaveAssessmentInput) (*domain.Assessment, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	sections := input.Sections
	if sections == nil {
		sections = []domain.Section{}
	}
	now := time.Now()

	existing, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	switch {
	case err == nil:
		fields := map[string]interface{}{
			"title":       input.Title,
			"description": input.Description,
			"sections":    datatypes.JSONSlice[domain.Section](sections),
			"updated_at":  now,
		}
		if input.IsActive != nil {
			fields["is_active"] = *input.IsActive
		}
		if err := u.assessmentRepo.Update(ctx, existing.ID, fields); err != nil {
			return nil, apperror.Wrap("Failed to save assessment", err)
		}
		updated, err := u.assessmentRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, apperror.Wrap("Failed to save assessment", err)
		}
		return updated, nil

	case errors.Is(err, domain.ErrNotFound):
		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}
		a := &domain.Assessment{
			JobID:       jobID,
			Title:       input.Title,
			Description: input.Description,
			Sections:    datatypes.JSONSlice[domain.Section](sections),
			IsActive:    active,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := u.assessmentRepo.Create(ctx, a); err != nil {
			return nil, apperror.Wrap("Failed to save assessment", err)
		}
		return a, nil

	default:
		return nil, apperror.Wrap("Failed to save assessment", err)
	}
}

func (u *assessmentUsecase) SubmitResponse(ctx context.Context, jobID int64, input domain.SubmitResponseInput) (*domain.SubmissionResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	a, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Assessment not found")
	}
	if err != nil {
		return nil, apperror.Wrap("Failed to submit assessment", err)
	}

	responses := datatypes.JSON(input.Responses)
	if len(responses) == 0 {
		responses = datatypes.JSON("{}")
	}

	resp := &domain.AssessmentResponse{
		AssessmentID: a.ID,
		JobID:        jobID,
		CandidateID:  input.CandidateID,
		Responses:    responses,
		SubmittedAt:  time.Now(),
		Score:        minScore + u.intn(scoreSpread),
	}
	if err := u.responseRepo.Create(ctx, resp); err != nil {
		return nil, apperror.Wrap("Failed to submit assessment", err)
	}

	return &domain.SubmissionResult{ID: resp.ID, Success: true, Message: "Assessment submitted successfully"}, nil
}
