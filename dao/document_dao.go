package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type DocumentDAO struct {
	DB *gorm.DB
}

func NewDocumentDAO(db *gorm.DB) *DocumentDAO {
	return &DocumentDAO{DB: db}
}

func (dao *DocumentDAO) CreateDocument(ctx context.Context, document model.Document) (string, error) {
	if document.ID == "" {
		document.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&document).Error; err != nil {
		logger.Error("Error creating document", zap.Error(err), zap.String("fileName", document.FileName))
		return "", qms_errors.ErrDatabaseOperation
	}
	return document.ID, nil
}

func (dao *DocumentDAO) GetDocument(ctx context.Context, scope auth.Scope, documentID string) (*model.Document, error) {
	var document model.Document
	err := scoped(dao.DB.WithContext(ctx), scope).First(&document, "id = ?", documentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrDocumentNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &document, nil
}

func (dao *DocumentDAO) DeleteDocument(ctx context.Context, scope auth.Scope, documentID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Document{}, "id = ?", documentID)
	if result.Error != nil {
		logger.Error("Error deleting document", zap.Error(result.Error), zap.String("documentID", documentID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrDocumentNotFound
	}
	return nil
}

func (dao *DocumentDAO) ListDocuments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Document, error) {
	var documents []*model.Document
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Document{}), scope).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&documents).Error
	if err != nil {
		logger.Error("Error listing documents", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return documents, nil
}

func (dao *DocumentDAO) ListDocumentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.Document, error) {
	var documents []*model.Document
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Document{}), scope).
		Where("task_id = ?", taskID).
		Order("created_at DESC").Find(&documents).Error
	if err != nil {
		logger.Error("Error listing documents for task", zap.Error(err), zap.String("taskID", taskID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return documents, nil
}
