package usecase_test

import (
	"context"
	"errors"
	"testing"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/apperror"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) CreateBatch(ctx context.Context, jobs []domain.Job) error {
	return m.Called(ctx, jobs).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Job, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, query domain.JobQuery) ([]domain.Job, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) MaxOrder(ctx context.Context) (int, bool, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Bool(1), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *MockJobRepo) UpdateOrders(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCandidateRepo) CreateBatch(ctx context.Context, candidates []domain.Candidate) error {
	return m.Called(ctx, candidates).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context, query domain.CandidateQuery) ([]domain.Candidate, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

type MockTimelineRepo struct {
	mock.Mock
}

func (m *MockTimelineRepo) Create(ctx context.Context, entry *domain.CandidateTimeline) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockTimelineRepo) CreateBatch(ctx context.Context, entries []domain.CandidateTimeline) error {
	return m.Called(ctx, entries).Error(0)
}
func (m *MockTimelineRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.CandidateTimeline, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateTimeline), args.Error(1)
}

type MockAssessmentRepo struct {
	mock.Mock
}

func (m *MockAssessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockAssessmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assessment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assessment), args.Error(1)
}
func (m *MockAssessmentRepo) GetByJobID(ctx context.Context, jobID int64) (*domain.Assessment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assessment), args.Error(1)
}
func (m *MockAssessmentRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Create(ctx context.Context, resp *domain.AssessmentResponse) error {
	return m.Called(ctx, resp).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateBatch(ctx context.Context, users []domain.User) error {
	return m.Called(ctx, users).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}
