package domain

import (
	"context"
	"time"
)

// CandidateTimeline is one append-only entry of a candidate's stage history.
type CandidateTimeline struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CandidateID int64     `json:"candidateId" gorm:"not null;index"`
	Stage       string    `json:"stage" gorm:"size:16;not null;index"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index"`
	Notes       string    `json:"notes" gorm:"type:text"`
}

type TimelineRepository interface {
	Create(ctx context.Context, entry *CandidateTimeline) error
	CreateBatch(ctx context.Context, entries []CandidateTimeline) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]CandidateTimeline, error)
}
