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

type IDepartmentService interface {
	CreateDepartment(ctx context.Context, department model.Department, creatorID string) (*model.Department, error)
	GetDepartment(ctx context.Context, scope auth.Scope, departmentID string) (*model.Department, error)
	UpdateDepartment(ctx context.Context, scope auth.Scope, department model.Department, updaterID string) (*model.Department, error)
	DeleteDepartment(ctx context.Context, scope auth.Scope, departmentID string, deleterID string) error
	ListDepartments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Department, error)
}

type DepartmentService struct {
	departmentDAO  *dao.DepartmentDAO
	validationUtil *util.ValidationUtil
}

var _ IDepartmentService = &DepartmentService{}

func NewDepartmentService(departmentDAO *dao.DepartmentDAO, validationUtil *util.ValidationUtil) *DepartmentService {
	return &DepartmentService{
		departmentDAO:  departmentDAO,
		validationUtil: validationUtil,
	}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, department model.Department, creatorID string) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartment(department); err != nil {
		return nil, fmt.Errorf("invalid department: %w", err)
	}

	departmentID, err := s.departmentDAO.CreateDepartment(ctx, department)
	if err != nil {
		logger.Error("Error creating department", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	department.ID = departmentID

	logger.Info("Department created successfully", zap.String("departmentID", departmentID), zap.String("creatorID", creatorID))
	return &department, nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, scope auth.Scope, departmentID string) (*model.Department, error) {
	return s.departmentDAO.GetDepartment(ctx, scope, departmentID)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, scope auth.Scope, department model.Department, updaterID string) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartment(department); err != nil {
		return nil, fmt.Errorf("invalid department: %w", err)
	}

	updated, err := s.departmentDAO.UpdateDepartment(ctx, scope, department)
	if err != nil {
		return nil, err
	}

	logger.Info("Department updated successfully", zap.String("departmentID", department.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, scope auth.Scope, departmentID string, deleterID string) error {
	if err := s.departmentDAO.DeleteDepartment(ctx, scope, departmentID); err != nil {
		return err
	}
	logger.Info("Department deleted", zap.String("departmentID", departmentID), zap.String("deleterID", deleterID))
	return nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Department, error) {
	return s.departmentDAO.ListDepartments(ctx, scope, limit, offset)
}
