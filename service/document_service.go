// service/document_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/storage"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type IDocumentService interface {
	UploadDocument(ctx context.Context, scope auth.Scope, document model.Document, content io.Reader, contentType string, uploaderID string) (*model.Document, error)
	GetDocument(ctx context.Context, scope auth.Scope, documentID string) (*model.Document, error)
	DeleteDocument(ctx context.Context, scope auth.Scope, documentID string, deleterID string) error
	ListDocuments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Document, error)
	ListDocumentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.Document, error)
}

// DocumentService stores attachment content through the configured
// Store and records the resulting URL against the task. The content
// write happens before the row insert; an insert failure prompts a
// best-effort cleanup of the stored object.
type DocumentService struct {
	documentDAO    *dao.DocumentDAO
	taskDAO        *dao.TaskDAO
	store          storage.Store
	validationUtil *util.ValidationUtil
}

var _ IDocumentService = &DocumentService{}

func NewDocumentService(documentDAO *dao.DocumentDAO, taskDAO *dao.TaskDAO, store storage.Store, validationUtil *util.ValidationUtil) *DocumentService {
	return &DocumentService{
		documentDAO:    documentDAO,
		taskDAO:        taskDAO,
		store:          store,
		validationUtil: validationUtil,
	}
}

func (s *DocumentService) UploadDocument(ctx context.Context, scope auth.Scope, document model.Document, content io.Reader, contentType string, uploaderID string) (*model.Document, error) {
	document.UserID = uploaderID
	if err := s.validationUtil.ValidateDocument(document); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	task, err := s.taskDAO.GetTask(ctx, scope, document.TaskID)
	if err != nil {
		return nil, err
	}
	document.CompanyID = task.CompanyID
	document.ID = uuid.New().String()

	key := storageKey(document)
	url, err := s.store.Save(ctx, key, content, contentType)
	if err != nil {
		logger.Error("Error storing attachment", zap.Error(err), zap.String("fileName", document.FileName))
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	document.URL = url

	if _, err := s.documentDAO.CreateDocument(ctx, document); err != nil {
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			logger.Warn("Failed to clean up orphaned attachment", zap.Error(cleanupErr), zap.String("key", key))
		}
		return nil, err
	}

	logger.Info("Document uploaded",
		zap.String("documentID", document.ID),
		zap.String("taskID", document.TaskID),
		zap.String("uploaderID", uploaderID))
	return &document, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, scope auth.Scope, documentID string) (*model.Document, error) {
	return s.documentDAO.GetDocument(ctx, scope, documentID)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, scope auth.Scope, documentID string, deleterID string) error {
	document, err := s.documentDAO.GetDocument(ctx, scope, documentID)
	if err != nil {
		return err
	}
	if err := s.documentDAO.DeleteDocument(ctx, scope, documentID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, storageKey(*document)); err != nil {
		logger.Warn("Failed to delete attachment content", zap.Error(err), zap.String("documentID", documentID))
	}
	logger.Info("Document deleted", zap.String("documentID", documentID), zap.String("deleterID", deleterID))
	return nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Document, error) {
	return s.documentDAO.ListDocuments(ctx, scope, limit, offset)
}

func (s *DocumentService) ListDocumentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.Document, error) {
	return s.documentDAO.ListDocumentsByTask(ctx, scope, taskID)
}

// storageKey shards attachments by company and task so tenant cleanup
// stays a prefix operation.
func storageKey(document model.Document) string {
	return path.Join(document.CompanyID, document.TaskID, document.ID+"_"+document.FileName)
}
