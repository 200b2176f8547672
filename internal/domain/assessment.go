package domain

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Question types
const (
	QuestionSingleChoice = "single-choice"
	QuestionMultiChoice  = "multi-choice"
	QuestionShortText    = "short-text"
	QuestionLongText     = "long-text"
	QuestionNumeric      = "numeric"
	QuestionFileUpload   = "file-upload"
)

// Assessment is the single questionnaire attached to a job.
type Assessment struct {
	ID          int64                        `json:"id" gorm:"primaryKey;autoIncrement"`
	JobID       int64                        `json:"jobId" gorm:"not null;uniqueIndex"`
	Title       string                       `json:"title" gorm:"size:255"`
	Description string                       `json:"description,omitempty" gorm:"type:text"`
	Sections    datatypes.JSONSlice[Section] `json:"sections"`
	IsActive    bool                         `json:"isActive"`
	CreatedAt   time.Time                    `json:"createdAt" gorm:"index;autoCreateTime:false"`
	UpdatedAt   time.Time                    `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

type Section struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions" validate:"dive"`
}

type Question struct {
	ID         string              `json:"id" validate:"required"`
	Type       string              `json:"type" validate:"required,oneof=single-choice multi-choice short-text long-text numeric file-upload"`
	Question   string              `json:"question" validate:"required"`
	Required   bool                `json:"required"`
	Options    []string            `json:"options,omitempty" validate:"required_if=Type single-choice,required_if=Type multi-choice"`
	Validation *QuestionValidation `json:"validation,omitempty"`
}

// QuestionValidation holds optional answer constraints.
type QuestionValidation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
}

// AssessmentResponse is a candidate's submitted answers with a score.
type AssessmentResponse struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	AssessmentID int64          `json:"assessmentId" gorm:"not null;index"`
	JobID        int64          `json:"jobId" gorm:"not null;index"`
	CandidateID  int64          `json:"candidateId" gorm:"not null;index"`
	Responses    datatypes.JSON `json:"responses"`
	SubmittedAt  time.Time      `json:"submittedAt" gorm:"not null"`
	Score        int            `json:"score"`
}

type SaveAssessmentInput struct {
	Title       string    `json:"title" validate:"max=255"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections" validate:"dive"`
	IsActive    *bool     `json:"isActive"`
}

type SubmitResponseInput struct {
	CandidateID int64           `json:"candidateId" validate:"required,gt=0"`
	Responses   json.RawMessage `json:"responses"`
}

type SubmissionResult struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *Assessment) error
	GetByID(ctx context.Context, id int64) (*Assessment, error)
	GetByJobID(ctx context.Context, jobID int64) (*Assessment, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

type AssessmentResponseRepository interface {
	Create(ctx context.Context, response *AssessmentResponse) error
}

type AssessmentUsecase interface {
	GetAssessment(ctx context.Context, jobID int64) (*Assessment, error)
	SaveAssessment(ctx context.Context, jobID int64, input SaveAssessmentInput) (*Assessment, error)
	SubmitResponse(ctx context.Context, jobID int64, input SubmitResponseInput) (*SubmissionResult, error)
}
