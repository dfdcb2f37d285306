// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogDecision(ctx context.Context, decision Decision) error
	QueryDecisions(ctx context.Context, from, to time.Time, userID, moduleID string) ([]Decision, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogDecision(ctx context.Context, decision Decision) error {
	return s.repo.LogDecision(ctx, decision)
}

func (s *service) QueryDecisions(ctx context.Context, from, to time.Time, userID, moduleID string) ([]Decision, error) {
	return s.repo.QueryDecisions(ctx, from, to, userID, moduleID)
}
