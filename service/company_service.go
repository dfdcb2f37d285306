// service/company_service.go
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

type ICompanyService interface {
	CreateCompany(ctx context.Context, company model.Company, creatorID string) (*model.Company, error)
	GetCompany(ctx context.Context, scope auth.Scope, companyID string) (*model.Company, error)
	UpdateCompany(ctx context.Context, scope auth.Scope, company model.Company, updaterID string) (*model.Company, error)
	DeactivateCompany(ctx context.Context, companyID string, deleterID string) error
	ListCompanies(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Company, error)
}

type CompanyService struct {
	companyDAO     *dao.CompanyDAO
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ ICompanyService = &CompanyService{}

func NewCompanyService(companyDAO *dao.CompanyDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *CompanyService {
	return &CompanyService{
		companyDAO:     companyDAO,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *CompanyService) CreateCompany(ctx context.Context, company model.Company, creatorID string) (*model.Company, error) {
	if err := s.validationUtil.ValidateCompany(company); err != nil {
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	companyID, err := s.companyDAO.CreateCompany(ctx, company)
	if err != nil {
		logger.Error("Error creating company", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	company.ID = companyID

	logger.Info("Company created successfully", zap.String("companyID", companyID), zap.String("creatorID", creatorID))
	return &company, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, scope auth.Scope, companyID string) (*model.Company, error) {
	return s.companyDAO.GetCompany(ctx, scope, companyID)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, scope auth.Scope, company model.Company, updaterID string) (*model.Company, error) {
	if err := s.validationUtil.ValidateCompany(company); err != nil {
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	updated, err := s.companyDAO.UpdateCompany(ctx, scope, company)
	if err != nil {
		return nil, err
	}

	logger.Info("Company updated successfully", zap.String("companyID", company.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *CompanyService) DeactivateCompany(ctx context.Context, companyID string, deleterID string) error {
	if err := s.companyDAO.DeactivateCompany(ctx, companyID); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, util.EventCompanyDeactivate, companyID)

	logger.Info("Company deactivated", zap.String("companyID", companyID), zap.String("deleterID", deleterID))
	return nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Company, error) {
	return s.companyDAO.ListCompanies(ctx, scope, limit, offset)
}
