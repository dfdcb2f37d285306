// service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/audit"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/storage"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type Services struct {
	Auth         IAuthService
	Access       IAccessService
	Company      ICompanyService
	User         IUserService
	Role         IRoleService
	Permission   IPermissionService
	Module       IModuleService
	Dept         IDepartmentService
	Task         ITaskService
	Iteration    IIterationService
	Assignment   IAssignmentService
	Comment      ICommentService
	Document     IDocumentService
	Notification INotificationService
	Audit        audit.Service
}

func InitializeServices(
	gdb *gorm.DB,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
	hub RealtimePublisher,
	store storage.Store,
) (*Services, error) {
	companyDAO := dao.NewCompanyDAO(gdb)
	userDAO := dao.NewUserDAO(gdb)
	roleDAO := dao.NewRoleDAO(gdb)
	permissionDAO := dao.NewPermissionDAO(gdb)
	moduleDAO := dao.NewModuleDAO(gdb)
	departmentDAO := dao.NewDepartmentDAO(gdb)
	taskDAO := dao.NewTaskDAO(gdb)
	iterationDAO := dao.NewIterationDAO(gdb)
	assignmentDAO := dao.NewAssignmentDAO(gdb)
	commentDAO := dao.NewCommentDAO(gdb)
	documentDAO := dao.NewDocumentDAO(gdb)
	notificationDAO := dao.NewNotificationDAO(gdb)

	notificationSvc := NewNotificationService(notificationDAO, validationUtil, hub)

	services := &Services{
		Auth:         NewAuthService(userDAO),
		Access:       NewAccessService(roleDAO, permissionDAO, cacheService, auditService),
		Company:      NewCompanyService(companyDAO, validationUtil, eventBus),
		User:         NewUserService(userDAO, validationUtil),
		Role:         NewRoleService(roleDAO, validationUtil, cacheService),
		Permission:   NewPermissionService(permissionDAO, moduleDAO, validationUtil, cacheService, eventBus),
		Module:       NewModuleService(moduleDAO),
		Dept:         NewDepartmentService(departmentDAO, validationUtil),
		Task:         NewTaskService(taskDAO, validationUtil),
		Iteration:    NewIterationService(iterationDAO, validationUtil),
		Assignment:   NewAssignmentService(assignmentDAO, taskDAO, validationUtil, notificationSvc, eventBus),
		Comment:      NewCommentService(commentDAO, taskDAO, validationUtil),
		Document:     NewDocumentService(documentDAO, taskDAO, store, validationUtil),
		Notification: notificationSvc,
		Audit:        auditService,
	}

	return services, nil
}
