package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"talentflow-backend/internal/domain"
	"talentflow-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	jobs        domain.JobRepository
	candidates  domain.CandidateRepository
	timeline    domain.TimelineRepository
	assessments domain.AssessmentRepository
	users       domain.UserRepository

	// HashCost is the bcrypt cost used for demo passwords.
	HashCost int
}

func NewSeeder(
	jobs domain.JobRepository,
	candidates domain.CandidateRepository,
	timeline domain.TimelineRepository,
	assessments domain.AssessmentRepository,
	users domain.UserRepository,
) *Seeder {
	return &Seeder{
		jobs:        jobs,
		candidates:  candidates,
		timeline:    timeline,
		assessments: assessments,
		users:       users,
		HashCost:    bcrypt.DefaultCost,
	}
}

// Run persists a generated dataset unless the jobs table already has rows.
// It reports whether anything was written. Writes done before a failure
// are kept.
func (s *Seeder) Run(ctx context.Context, r *rand.Rand, now time.Time) (bool, error) {
	existing, err := s.jobs.Count(ctx)
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	logger.Log.Info("Generating seed data")
	ds := Generate(r, now)

	users := make([]domain.User, len(ds.Users))
	for i, u := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.HashCost)
		if err != nil {
			return false, fmt.Errorf("seed: hash password for %s: %w", u.Email, err)
		}
		users[i] = domain.User{Email: u.Email, PasswordHash: string(hash), Role: u.Role, Name: u.Name}
	}
	if err := s.users.CreateBatch(ctx, users); err != nil {
		return false, err
	}

	if err := s.jobs.CreateBatch(ctx, ds.Jobs); err != nil {
		return false, err
	}

	candidates := make([]domain.Candidate, len(ds.Candidates))
	for i, cs := range ds.Candidates {
		candidates[i] = cs.Candidate
		candidates[i].JobID = ds.Jobs[cs.JobIndex].ID
	}
	if err := s.candidates.CreateBatch(ctx, candidates); err != nil {
		return false, err
	}

	var entries []domain.CandidateTimeline
	for _, c := range candidates {
		entries = append(entries, BuildTimeline(c)...)
	}
	if err := s.timeline.CreateBatch(ctx, entries); err != nil {
		return false, err
	}

	for i := range ds.Assessments {
		a := ds.Assessments[i]
		a.JobID = ds.Jobs[i].ID
		if err := s.assessments.Create(ctx, &a); err != nil {
			return false, err
		}
	}

	logger.Log.Info("Seed data generated",
		"users", len(users),
		"jobs", len(ds.Jobs),
		"candidates", len(candidates),
		"timeline_entries", len(entries),
		"assessments", len(ds.Assessments),
	)
	return true, nil
}

// Initialize runs the seeder and logs instead of returning failures.
func (s *Seeder) Initialize(ctx context.Context, r *rand.Rand, now time.Time) bool {
	seeded, err := s.Run(ctx, r, now)
	if err != nil {
		logger.Log.Error("Error generating seed data", "error", err)
		return false
	}
	if !seeded {
		logger.Log.Info("Seed data already present, skipping")
	}
	return seeded
}
