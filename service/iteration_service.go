package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type IIterationService interface {
	CreateIteration(ctx context.Context, iteration model.Iteration, creatorID string) (*model.Iteration, error)
	GetIteration(ctx context.Context, scope auth.Scope, iterationID string) (*model.Iteration, error)
	UpdateIteration(ctx context.Context, scope auth.Scope, iteration model.Iteration, updaterID string) (*model.Iteration, error)
	DeleteIteration(ctx context.Context, scope auth.Scope, iterationID string, deleterID string) error
	ListIterations(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Iteration, error)
}

type IterationService struct {
	iterationDAO   *dao.IterationDAO
	validationUtil *util.ValidationUtil
}

var _ IIterationService = &IterationService{}

func NewIterationService(iterationDAO *dao.IterationDAO, validationUtil *util.ValidationUtil) *IterationService {
	return &IterationService{
		iterationDAO:   iterationDAO,
		validationUtil: validationUtil,
	}
}

func (s *IterationService) CreateIteration(ctx context.Context, iteration model.Iteration, creatorID string) (*model.Iteration, error) {
	if err := s.validationUtil.ValidateIteration(iteration); err != nil {
		return nil, fmt.Errorf("invalid iteration: %w", err)
	}

	iterationID, err := s.iterationDAO.CreateIteration(ctx, iteration)
	if err != nil {
		logger.Error("Error creating iteration", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	iteration.ID = iterationID

	logger.Info("Iteration created successfully", zap.String("iterationID", iterationID), zap.String("creatorID", creatorID))
	return &iteration, nil
}

func (s *IterationService) GetIteration(ctx context.Context, scope auth.Scope, iterationID string) (*model.Iteration, error) {
	return s.iterationDAO.GetIteration(ctx, scope, iterationID)
}

func (s *IterationService) UpdateIteration(ctx context.Context, scope auth.Scope, iteration model.Iteration, updaterID string) (*model.Iteration, error) {
	if err := s.validationUtil.ValidateIteration(iteration); err != nil {
		return nil, fmt.Errorf("invalid iteration: %w", err)
	}

	updated, err := s.iterationDAO.UpdateIteration(ctx, scope, iteration)
	if err != nil {
		return nil, err
	}

	logger.Info("Iteration updated successfully", zap.String("iterationID", iteration.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *IterationService) DeleteIteration(ctx context.Context, scope auth.Scope, iterationID string, deleterID string) error {
	if err := s.iterationDAO.DeleteIteration(ctx, scope, iterationID); err != nil {
		return err
	}
	logger.Info("Iteration deleted", zap.String("iterationID", iterationID), zap.String("deleterID", deleterID))
	return nil
}

func (s *IterationService) ListIterations(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Iteration, error) {
	return s.iterationDAO.ListIterations(ctx, scope, limit, offset)
}
