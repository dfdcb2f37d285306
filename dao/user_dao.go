// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Active = true

	if err := dao.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrUserConflict
		}
		logger.Error("Error creating user", zap.Error(err), zap.String("email", user.Email))
		return "", qms_errors.ErrDatabaseOperation
	}
	return user.ID, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, scope auth.Scope, userID string) (*model.User, error) {
	var user model.User
	err := scoped(dao.DB.WithContext(ctx), scope).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrUserNotFound
	} else if err != nil {
		logger.Error("Error retrieving user", zap.Error(err), zap.String("userID", userID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &user, nil
}

// GetUserByEmail is unscoped: it backs the login flow, which runs
// before any identity exists.
func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).First(&user, "email = ? AND active = true", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrUserNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, scope auth.Scope, user model.User) (*model.User, error) {
	user.UpdatedAt = time.Now()
	result := scoped(dao.DB.WithContext(ctx).Model(&model.User{}), scope).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":          user.Name,
			"role_id":       user.RoleID,
			"manager_id":    user.ManagerID,
			"department_id": user.DepartmentID,
			"active":        user.Active,
			"updated_at":    user.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating user", zap.Error(result.Error), zap.String("userID", user.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrUserNotFound
	}
	return dao.GetUser(ctx, scope, user.ID)
}

// DeleteUser deactivates rather than removes; history stays intact.
func (dao *UserDAO) DeleteUser(ctx context.Context, scope auth.Scope, userID string) error {
	result := scoped(dao.DB.WithContext(ctx).Model(&model.User{}), scope).
		Where("id = ?", userID).
		Update("active", false)
	if result.Error != nil {
		logger.Error("Error deleting user", zap.Error(result.Error), zap.String("userID", userID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrUserNotFound
	}
	return nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.User, error) {
	var users []*model.User
	err := scoped(dao.DB.WithContext(ctx).Model(&model.User{}), scope).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		logger.Error("Error listing users", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return users, nil
}

func (dao *UserDAO) SearchUsers(ctx context.Context, scope auth.Scope, criteria model.UserSearchCriteria) ([]*model.User, error) {
	q := scoped(dao.DB.WithContext(ctx).Model(&model.User{}), scope)
	if criteria.Name != "" {
		q = q.Where("name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Email != "" {
		q = q.Where("email ILIKE ?", "%"+criteria.Email+"%")
	}
	if criteria.RoleID != "" {
		q = q.Where("role_id = ?", criteria.RoleID)
	}
	if criteria.DepartmentID != "" {
		q = q.Where("department_id = ?", criteria.DepartmentID)
	}
	if criteria.Limit <= 0 {
		criteria.Limit = 20
	}

	var users []*model.User
	err := q.Order("created_at DESC").Limit(criteria.Limit).Offset(criteria.Offset).Find(&users).Error
	if err != nil {
		logger.Error("Error searching users", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return users, nil
}
