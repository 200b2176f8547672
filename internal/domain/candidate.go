package domain

import (
	"context"
	"time"
)

// Pipeline stages in hiring order; rejected is terminal.
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

var Stages = []string{StageApplied, StageScreen, StageTech, StageOffer, StageHired, StageRejected}

// StageIndex returns the position of stage in Stages, or -1.
func StageIndex(stage string) int {
	for i, s := range Stages {
		if s == stage {
			return i
		}
	}
	return -1
}

type Candidate struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Email      string    `json:"email" gorm:"size:255;not null;index"`
	Stage      string    `json:"stage" gorm:"size:16;not null;index"`
	JobID      int64     `json:"jobId" gorm:"not null;index"`
	Phone      string    `json:"phone,omitempty" gorm:"size:32"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index;autoCreateTime:false"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"index;autoUpdateTime:false"`
}

// CandidateWithJob is a candidate joined with the job it applied to.
// Job is nil when the referenced job no longer exists.
type CandidateWithJob struct {
	Candidate
	Job *Job `json:"job"`
}

// CandidateQuery filters candidates at the store level.
type CandidateQuery struct {
	Search string // case-insensitive substring of name or email
	Stage  string
	JobID  int64
	Limit  int
	Offset int
}

type CandidateFilter struct {
	Search   string
	Stage    string
	JobID    int64
	Page     int
	PageSize int
}

// UpdateCandidateInput carries a partial update. Notes is not stored on the
// candidate; it becomes the timeline note when the stage changes.
type UpdateCandidateInput struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Stage      *string `json:"stage" validate:"omitempty,oneof=applied screen tech offer hired rejected"`
	JobID      *int64  `json:"jobId" validate:"omitempty,gt=0"`
	Phone      *string `json:"phone" validate:"omitempty,valid_phone"`
	Experience *int    `json:"experience" validate:"omitempty,gte=0"`
	Notes      *string `json:"notes"`
}

// CandidateExport is a rendered export file.
type CandidateExport struct {
	Data        []byte
	Filename    string
	ContentType string
}

type CandidateRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, candidates []Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Fetch(ctx context.Context, query CandidateQuery) ([]Candidate, int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context, filter CandidateFilter) (*PaginatedResult[CandidateWithJob], error)
	GetCandidate(ctx context.Context, id int64) (*CandidateWithJob, error)
	UpdateCandidate(ctx context.Context, id int64, input UpdateCandidateInput) (*CandidateWithJob, error)
	GetTimeline(ctx context.Context, candidateID int64) ([]CandidateTimeline, error)
	ExportCandidates(ctx context.Context, filter CandidateFilter, format string) (*CandidateExport, error)
}
