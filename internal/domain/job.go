package domain

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job statuses
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

type Job struct {
	ID          int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string                      `json:"title" gorm:"size:255;not null;index"`
	Slug        string                      `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description string                      `json:"description,omitempty" gorm:"type:text"`
	Status      string                      `json:"status" gorm:"size:16;not null;index"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Order       int                         `json:"order" gorm:"not null;index"`
	CreatedAt   time.Time                   `json:"createdAt" gorm:"index;autoCreateTime:false"`
	UpdatedAt   *time.Time                  `json:"updatedAt,omitempty" gorm:"autoUpdateTime:false"`
}

// JobSortFields maps the sort keys accepted by the API to column names.
var JobSortFields = map[string]string{
	"id":        "id",
	"title":     "title",
	"slug":      "slug",
	"status":    "status",
	"order":     "order",
	"createdAt": "created_at",
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(title string) string {
	return slugSeparators.ReplaceAllString(strings.ToLower(title), "-")
}

// JobQuery selects an ordered traversal of the jobs table.
type JobQuery struct {
	Status string
	SortBy string // column name, see JobSortFields
	Desc   bool
}

// JobFilter holds the list parameters accepted by GET /jobs.
type JobFilter struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

type CreateJobInput struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Slug        string   `json:"slug" validate:"omitempty,slug,max=255"`
	Description string   `json:"description"`
	Status      string   `json:"status" validate:"omitempty,oneof=active archived"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

// UpdateJobInput carries a partial update; nil fields are left untouched.
type UpdateJobInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string   `json:"slug" validate:"omitempty,min=1,slug,max=255"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" validate:"omitempty,oneof=active archived"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,required"`
}

type ReorderJobInput struct {
	FromOrder int `json:"fromOrder" validate:"gte=0"`
	ToOrder   int `json:"toOrder" validate:"gte=0"`
}

type JobRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, job *Job) error
	CreateBatch(ctx context.Context, jobs []Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]Job, error)
	GetBySlug(ctx context.Context, slug string) (*Job, error)
	Fetch(ctx context.Context, query JobQuery) ([]Job, error)
	MaxOrder(ctx context.Context) (order int, found bool, err error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	// UpdateOrders assigns order i to ids[i] inside one transaction.
	UpdateOrders(ctx context.Context, ids []int64) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter) (*PaginatedResult[Job], error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, input CreateJobInput) (*Job, error)
	UpdateJob(ctx context.Context, id int64, input UpdateJobInput) (*Job, error)
	ReorderJob(ctx context.Context, id int64, input ReorderJobInput) error
}
