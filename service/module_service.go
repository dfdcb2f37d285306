package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type IModuleService interface {
	CreateModule(ctx context.Context, module model.Module, creatorID string) (*model.Module, error)
	GetModule(ctx context.Context, moduleID string) (*model.Module, error)
	UpdateModule(ctx context.Context, module model.Module, updaterID string) (*model.Module, error)
	DeleteModule(ctx context.Context, moduleID string, deleterID string) error
	ListModules(ctx context.Context) ([]*model.Module, error)
}

// ModuleService manages the module registry. The fixed modules are
// seeded at startup; creating one here must be paired with permission
// rows for every role that should reach it.
type ModuleService struct {
	moduleDAO *dao.ModuleDAO
}

var _ IModuleService = &ModuleService{}

func NewModuleService(moduleDAO *dao.ModuleDAO) *ModuleService {
	return &ModuleService{moduleDAO: moduleDAO}
}

func (s *ModuleService) CreateModule(ctx context.Context, module model.Module, creatorID string) (*model.Module, error) {
	if module.Name == "" {
		return nil, fmt.Errorf("invalid module: name cannot be empty")
	}
	if module.ID == "" {
		module.ID = uuid.New().String()
	}

	moduleID, err := s.moduleDAO.CreateModule(ctx, module)
	if err != nil {
		return nil, err
	}
	module.ID = moduleID

	logger.Info("Module created", zap.String("moduleID", moduleID), zap.String("name", module.Name), zap.String("creatorID", creatorID))
	return &module, nil
}

func (s *ModuleService) GetModule(ctx context.Context, moduleID string) (*model.Module, error) {
	return s.moduleDAO.GetModule(ctx, moduleID)
}

func (s *ModuleService) UpdateModule(ctx context.Context, module model.Module, updaterID string) (*model.Module, error) {
	if module.Name == "" {
		return nil, fmt.Errorf("invalid module: name cannot be empty")
	}

	updated, err := s.moduleDAO.UpdateModule(ctx, module)
	if err != nil {
		return nil, err
	}
	logger.Info("Module updated", zap.String("moduleID", module.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *ModuleService) DeleteModule(ctx context.Context, moduleID string, deleterID string) error {
	if err := s.moduleDAO.DeleteModule(ctx, moduleID); err != nil {
		return err
	}
	logger.Info("Module deleted", zap.String("moduleID", moduleID), zap.String("deleterID", deleterID))
	return nil
}

func (s *ModuleService) ListModules(ctx context.Context) ([]*model.Module, error) {
	return s.moduleDAO.ListModules(ctx)
}
