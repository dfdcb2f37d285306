// controller/controllers.go
package controller

import "github.com/idatumhimanshu-alt/syscomply-app-sub001/service"

type Controllers struct {
	Auth         *AuthController
	Company      *CompanyController
	User         *UserController
	Role         *RoleController
	Permission   *PermissionController
	Module       *ModuleController
	Dept         *DepartmentController
	Task         *TaskController
	Iteration    *IterationController
	Assignment   *AssignmentController
	Comment      *CommentController
	Document     *DocumentController
	Notification *NotificationController
	Audit        *AuditController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:         NewAuthController(services.Auth),
		Company:      NewCompanyController(services.Company, services.Access),
		User:         NewUserController(services.User, services.Access),
		Role:         NewRoleController(services.Role, services.Access),
		Permission:   NewPermissionController(services.Permission, services.Access),
		Module:       NewModuleController(services.Module, services.Access),
		Dept:         NewDepartmentController(services.Dept, services.Access),
		Task:         NewTaskController(services.Task, services.Access),
		Iteration:    NewIterationController(services.Iteration, services.Access),
		Assignment:   NewAssignmentController(services.Assignment, services.Access),
		Comment:      NewCommentController(services.Comment, services.Access),
		Document:     NewDocumentController(services.Document, services.Access),
		Notification: NewNotificationController(services.Notification, services.Access),
		Audit:        NewAuditController(services.Audit, services.Access),
	}
}
