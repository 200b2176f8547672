package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"talentflow-backend/internal/domain"
	"talentflow-backend/internal/usecase"
	"talentflow-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func makeJobs(n int) []domain.Job {
	jobs := make([]domain.Job, n)
	for i := range jobs {
		jobs[i] = domain.Job{ID: int64(i + 1), Title: fmt.Sprintf("Job %d", i), Slug: fmt.Sprintf("job-%d", i), Order: i, Status: domain.JobStatusActive}
	}
	return jobs
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should paginate with totalPages rounded up", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(makeJobs(25), nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		res, err := uc.ListJobs(ctx, domain.JobFilter{Page: 2, PageSize: 10})
		require.NoError(t, err)
		require.Len(t, res.Data, 10)
		assert.Equal(t, 10, res.Data[0].Order)
		assert.Equal(t, 19, res.Data[9].Order)
		assert.EqualValues(t, 25, res.Pagination.Total)
		assert.Equal(t, 3, res.Pagination.TotalPages)
	})

	t.Run("Should default page and pageSize", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(makeJobs(3), nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		res, err := uc.ListJobs(ctx, domain.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Pagination.Page)
		assert.Equal(t, 10, res.Pagination.PageSize)
		assert.Len(t, res.Data, 3)
	})

	t.Run("Should return an empty page past the end", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(makeJobs(3), nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		res, err := uc.ListJobs(ctx, domain.JobFilter{Page: 5})
		require.NoError(t, err)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
	})

	t.Run("Should return an empty page when the offset would overflow", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(makeJobs(25), nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		res, err := uc.ListJobs(ctx, domain.JobFilter{Page: math.MaxInt/2 + 1, PageSize: 4})
		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.EqualValues(t, 25, res.Pagination.Total)

		res, err = uc.ListJobs(ctx, domain.JobFilter{Page: 2, PageSize: math.MaxInt})
		require.NoError(t, err)
		assert.Empty(t, res.Data)
	})

	t.Run("Should search title and tags case-insensitively", func(t *testing.T) {
		jobs := []domain.Job{
			{ID: 1, Title: "Senior React Developer", Tags: datatypes.JSONSlice[string]{"React"}},
			{ID: 2, Title: "Data Scientist", Tags: datatypes.JSONSlice[string]{"Python"}},
			{ID: 3, Title: "Product Manager", Tags: datatypes.JSONSlice[string]{"Leadership"}},
		}
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{Status: domain.JobStatusActive, SortBy: "title", Desc: true}).Return(jobs, nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		res, err := uc.ListJobs(ctx, domain.JobFilter{Search: "PYTHON", Status: "active", Sort: "-title"})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.EqualValues(t, 2, res.Data[0].ID)
		assert.EqualValues(t, 1, res.Pagination.Total)
	})

	t.Run("Should reject unknown sort fields", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New())

		_, err := uc.ListJobs(ctx, domain.JobFilter{Sort: "salary"})
		requireAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should derive slug, next order and default status", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetBySlug", ctx, "qa-lead").Return(nil, domain.ErrNotFound)
		repo.On("MaxOrder", ctx).Return(24, true, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		job, err := uc.CreateJob(ctx, domain.CreateJobInput{Title: "QA Lead"})
		require.NoError(t, err)
		assert.Equal(t, "qa-lead", job.Slug)
		assert.Equal(t, 25, job.Order)
		assert.Equal(t, domain.JobStatusActive, job.Status)
		assert.False(t, job.CreatedAt.IsZero())
		assert.NotNil(t, job.Tags)
	})

	t.Run("Should start ordering at zero on an empty table", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetBySlug", ctx, "first").Return(nil, domain.ErrNotFound)
		repo.On("MaxOrder", ctx).Return(0, false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		job, err := uc.CreateJob(ctx, domain.CreateJobInput{Title: "First", Slug: "first", Status: "archived"})
		require.NoError(t, err)
		assert.Equal(t, 0, job.Order)
		assert.Equal(t, domain.JobStatusArchived, job.Status)
	})

	t.Run("Should reject duplicate slug without inserting", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetBySlug", ctx, "qa-lead").Return(&domain.Job{ID: 3, Slug: "qa-lead"}, nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		_, err := uc.CreateJob(ctx, domain.CreateJobInput{Title: "QA Lead"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Job with this slug already exists", appErr.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing title", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), validation.New())
		_, err := uc.CreateJob(ctx, domain.CreateJobInput{})
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Should wrap store failures as 500", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetBySlug", ctx, "qa-lead").Return(nil, domain.ErrNotFound)
		repo.On("MaxOrder", ctx).Return(0, false, nil)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("disk I/O error"))
		uc := usecase.NewJobUsecase(repo, validation.New())

		_, err := uc.CreateJob(ctx, domain.CreateJobInput{Title: "QA Lead"})
		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Failed to create job: disk I/O error", appErr.Message)
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	slug := "taken"

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(repo, validation.New())

		_, err := uc.UpdateJob(ctx, 9, domain.UpdateJobInput{})
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should reject a slug held by another job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1}, nil)
		repo.On("GetBySlug", ctx, slug).Return(&domain.Job{ID: 2, Slug: slug}, nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		_, err := uc.UpdateJob(ctx, 1, domain.UpdateJobInput{Slug: &slug})
		requireAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow keeping its own slug and stamp updatedAt", func(t *testing.T) {
		title := "Renamed"
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, int64(2)).Return(&domain.Job{ID: 2, Slug: slug, Title: title}, nil)
		repo.On("GetBySlug", ctx, slug).Return(&domain.Job{ID: 2, Slug: slug}, nil)
		repo.On("Update", ctx, int64(2), mock.MatchedBy(func(f map[string]interface{}) bool {
			_, stamped := f["updated_at"]
			return stamped && f["slug"] == slug && f["title"] == title
		})).Return(nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		job, err := uc.UpdateJob(ctx, 2, domain.UpdateJobInput{Slug: &slug, Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, job.Title)
		repo.AssertExpectations(t)
	})
}

func TestReorderJob(t *testing.T) {
	ctx := context.Background()
	jobs := makeJobs(4) // ids 1..4 at orders 0..3

	cases := []struct {
		name  string
		id    int64
		input domain.ReorderJobInput
		want  []int64
	}{
		{"move forward lands before target", 1, domain.ReorderJobInput{FromOrder: 0, ToOrder: 2}, []int64{2, 1, 3, 4}},
		{"move backward lands on target", 4, domain.ReorderJobInput{FromOrder: 3, ToOrder: 0}, []int64{4, 1, 2, 3}},
		{"target past the end is clamped", 2, domain.ReorderJobInput{FromOrder: 1, ToOrder: 40}, []int64{1, 3, 4, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockJobRepo)
			repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(append([]domain.Job(nil), jobs...), nil)
			repo.On("UpdateOrders", ctx, tc.want).Return(nil)
			uc := usecase.NewJobUsecase(repo, validation.New())

			require.NoError(t, uc.ReorderJob(ctx, tc.id, tc.input))
			repo.AssertExpectations(t)
		})
	}

	t.Run("Should fail with 500 for an unknown job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Fetch", ctx, domain.JobQuery{SortBy: "order"}).Return(jobs, nil)
		uc := usecase.NewJobUsecase(repo, validation.New())

		err := uc.ReorderJob(ctx, 99, domain.ReorderJobInput{FromOrder: 0, ToOrder: 1})
		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Failed to reorder job: job not found", appErr.Message)
		repo.AssertNotCalled(t, "UpdateOrders", mock.Anything, mock.Anything)
	})
}

func TestGetJob(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	repo.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, Title: "QA Lead"}, nil)
	repo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewJobUsecase(repo, validation.New())

	job, err := uc.GetJob(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "QA Lead", job.Title)

	_, err = uc.GetJob(ctx, 99)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Job not found", appErr.Message)
}
