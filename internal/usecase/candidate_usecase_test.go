package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"testing"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/internal/usecase"
	"talentflow-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type candidateFixture struct {
	candidates *MockCandidateRepo
	jobs       *MockJobRepo
	timeline   *MockTimelineRepo
	uc         domain.CandidateUsecase
}

func newCandidateFixture() *candidateFixture {
	f := &candidateFixture{
		candidates: new(MockCandidateRepo),
		jobs:       new(MockJobRepo),
		timeline:   new(MockTimelineRepo),
	}
	f.uc = usecase.NewCandidateUsecase(f.candidates, f.jobs, f.timeline, validation.New())
	return f
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()
	f := newCandidateFixture()

	rows := []domain.Candidate{
		{ID: 1, Name: "Aarav Patel", JobID: 7},
		{ID: 2, Name: "Diya Shah", JobID: 99},
		{ID: 3, Name: "Ira Rao", JobID: 7},
	}
	f.candidates.On("Fetch", ctx, domain.CandidateQuery{Search: "a", Stage: "tech", Limit: 50, Offset: 50}).Return(rows, int64(53), nil)
	f.jobs.On("GetByIDs", ctx, []int64{7, 99}).Return(map[int64]domain.Job{7: {ID: 7, Title: "QA Lead"}}, nil)

	res, err := f.uc.ListCandidates(ctx, domain.CandidateFilter{Search: "a", Stage: "tech", Page: 2})
	require.NoError(t, err)
	require.Len(t, res.Data, 3)
	require.NotNil(t, res.Data[0].Job)
	assert.Equal(t, "QA Lead", res.Data[0].Job.Title)
	assert.Nil(t, res.Data[1].Job, "dangling job reference joins to null")
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.Equal(t, 50, res.Pagination.PageSize)
}

func TestGetCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return 404 for a missing candidate", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidates.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.GetCandidate(ctx, 5)
		appErr := requireAppError(t, err, http.StatusNotFound)
		assert.Equal(t, "Candidate not found", appErr.Message)
	})

	t.Run("Should join the job", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidates.On("GetByID", ctx, int64(5)).Return(&domain.Candidate{ID: 5, JobID: 2}, nil)
		f.jobs.On("GetByIDs", ctx, []int64{2}).Return(map[int64]domain.Job{2: {ID: 2, Title: "Data Scientist"}}, nil)

		c, err := f.uc.GetCandidate(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Data Scientist", c.Job.Title)
	})
}

func TestUpdateCandidate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Should append a timeline entry describing the stage change", func(t *testing.T) {
		f := newCandidateFixture()
		stage := domain.StageOffer
		f.candidates.On("GetByID", ctx, int64(1)).Return(&domain.Candidate{ID: 1, Stage: domain.StageTech, JobID: 3, CreatedAt: created}, nil).Once()
		f.candidates.On("Update", ctx, int64(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["stage"] == stage && fields["updated_at"] != nil
		})).Return(nil)
		f.timeline.On("Create", ctx, mock.MatchedBy(func(e *domain.CandidateTimeline) bool {
			return e.CandidateID == 1 && e.Stage == stage && e.Notes == "Stage updated from tech to offer"
		})).Return(nil).Once()
		f.candidates.On("GetByID", ctx, int64(1)).Return(&domain.Candidate{ID: 1, Stage: stage, JobID: 3, CreatedAt: created}, nil)
		f.jobs.On("GetByIDs", ctx, []int64{3}).Return(map[int64]domain.Job{}, nil)

		c, err := f.uc.UpdateCandidate(ctx, 1, domain.UpdateCandidateInput{Stage: &stage})
		require.NoError(t, err)
		assert.Equal(t, stage, c.Stage)
		assert.Nil(t, c.Job)
		f.timeline.AssertExpectations(t)
	})

	t.Run("Should prefer explicit notes", func(t *testing.T) {
		f := newCandidateFixture()
		stage, notes := domain.StageHired, "Signed on Monday"
		f.candidates.On("GetByID", ctx, int64(1)).Return(&domain.Candidate{ID: 1, Stage: domain.StageOffer, JobID: 3}, nil)
		f.candidates.On("Update", ctx, int64(1), mock.Anything).Return(nil)
		f.timeline.On("Create", ctx, mock.MatchedBy(func(e *domain.CandidateTimeline) bool {
			return e.Notes == notes
		})).Return(nil).Once()
		f.jobs.On("GetByIDs", ctx, []int64{3}).Return(map[int64]domain.Job{}, nil)

		_, err := f.uc.UpdateCandidate(ctx, 1, domain.UpdateCandidateInput{Stage: &stage, Notes: &notes})
		require.NoError(t, err)
		f.timeline.AssertExpectations(t)
	})

	t.Run("Should not touch the timeline when the stage is unchanged", func(t *testing.T) {
		f := newCandidateFixture()
		stage, name := domain.StageTech, "New Name"
		f.candidates.On("GetByID", ctx, int64(1)).Return(&domain.Candidate{ID: 1, Stage: stage, JobID: 3}, nil)
		f.candidates.On("Update", ctx, int64(1), mock.Anything).Return(nil)
		f.jobs.On("GetByIDs", ctx, []int64{3}).Return(map[int64]domain.Job{}, nil)

		_, err := f.uc.UpdateCandidate(ctx, 1, domain.UpdateCandidateInput{Stage: &stage, Name: &name})
		require.NoError(t, err)
		f.timeline.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 for a missing candidate", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidates.On("GetByID", ctx, int64(8)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.UpdateCandidate(ctx, 8, domain.UpdateCandidateInput{})
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should reject an unknown stage", func(t *testing.T) {
		f := newCandidateFixture()
		stage := "interviewing"

		_, err := f.uc.UpdateCandidate(ctx, 1, domain.UpdateCandidateInput{Stage: &stage})
		requireAppError(t, err, http.StatusBadRequest)
		f.candidates.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExportCandidates(t *testing.T) {
	ctx := context.Background()
	rows := []domain.Candidate{{ID: 1, Name: "Kavya Nair", Email: "kavya.nair1@email.com", Stage: "screen", JobID: 4, Experience: 3}}

	t.Run("Should render CSV with a header row", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidates.On("Fetch", ctx, domain.CandidateQuery{Stage: "screen"}).Return(rows, int64(1), nil)
		f.jobs.On("GetByIDs", ctx, []int64{4}).Return(map[int64]domain.Job{4: {ID: 4, Title: "Scrum Master"}}, nil)

		out, err := f.uc.ExportCandidates(ctx, domain.CandidateFilter{Stage: "screen"}, "csv")
		require.NoError(t, err)
		assert.Equal(t, "text/csv", out.ContentType)

		records, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "NAME", records[0][0])
		assert.Equal(t, []string{"Kavya Nair", "kavya.nair1@email.com", "screen", "Scrum Master"}, records[1][:4])
	})

	t.Run("Should render an Excel workbook by default", func(t *testing.T) {
		f := newCandidateFixture()
		f.candidates.On("Fetch", ctx, domain.CandidateQuery{}).Return(rows, int64(1), nil)
		f.jobs.On("GetByIDs", ctx, []int64{4}).Return(map[int64]domain.Job{}, nil)

		out, err := f.uc.ExportCandidates(ctx, domain.CandidateFilter{}, "")
		require.NoError(t, err)
		assert.Contains(t, out.Filename, ".xlsx")

		book, err := excelize.OpenReader(bytes.NewReader(out.Data))
		require.NoError(t, err)
		defer book.Close()
		name, err := book.GetCellValue("Candidates", "A2")
		require.NoError(t, err)
		assert.Equal(t, "Kavya Nair", name)
	})

	t.Run("Should reject unknown formats", func(t *testing.T) {
		f := newCandidateFixture()
		_, err := f.uc.ExportCandidates(ctx, domain.CandidateFilter{}, "pdf")
		requireAppError(t, err, http.StatusBadRequest)
	})
}
