// service/auth_service.go
package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/config"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

type AuthService struct {
	userDAO *dao.UserDAO
}

var _ IAuthService = &AuthService{}

func NewAuthService(userDAO *dao.UserDAO) *AuthService {
	return &AuthService{userDAO: userDAO}
}

// Login verifies the credentials and mints a bearer token. Logout is
// client-side token deletion; there is no revocation list.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		// Indistinguishable from a bad password on purpose.
		return "", nil, qms_errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, qms_errors.ErrInvalidCredentials
	}

	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}

	token, err := auth.GenerateToken(user.ID, user.RoleID, companyID, config.GetDuration("auth.tokenTTL"))
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err), zap.String("userID", user.ID))
		return "", nil, qms_errors.ErrInternalServer
	}

	logger.Info("User logged in", zap.String("userID", user.ID))
	return token, user, nil
}

// HashPassword produces the stored credential for a new user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
