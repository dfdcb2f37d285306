// util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateCompany(company model.Company) error {
	if company.Name == "" {
		return fmt.Errorf("company name cannot be empty")
	}
	if company.Domain != "" {
		if err := v.validate.Var(company.Domain, "fqdn"); err != nil {
			return fmt.Errorf("company domain is not a valid hostname")
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateDepartment(department model.Department) error {
	if department.Name == "" {
		return fmt.Errorf("department name cannot be empty")
	}
	if department.CompanyID == "" {
		return fmt.Errorf("department company ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if err := v.validate.Var(user.Email, "required,email"); err != nil {
		return fmt.Errorf("user email is not a valid address")
	}
	if user.RoleID == "" {
		return fmt.Errorf("user role ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateRole(role model.Role) error {
	if role.Name == "" {
		return fmt.Errorf("role name cannot be empty")
	}
	if role.Tier != "" && role.Tier != model.TierStandard && role.Tier != model.TierSystemSuperAdmin {
		return fmt.Errorf("unknown role tier: %s", role.Tier)
	}
	return nil
}

func (v *ValidationUtil) ValidatePermission(permission model.Permission) error {
	if permission.RoleID == "" {
		return fmt.Errorf("permission role ID cannot be empty")
	}
	if permission.ModuleID == "" {
		return fmt.Errorf("permission module ID cannot be empty")
	}
	if !permission.Action.Valid() {
		return fmt.Errorf("permission action must be read, write or delete")
	}
	return nil
}

func (v *ValidationUtil) ValidateTask(task model.Task) error {
	if task.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if task.CompanyID == "" {
		return fmt.Errorf("task company ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateIteration(iteration model.Iteration) error {
	if iteration.Name == "" {
		return fmt.Errorf("iteration name cannot be empty")
	}
	if iteration.StartDate != nil && iteration.EndDate != nil && iteration.EndDate.Before(*iteration.StartDate) {
		return fmt.Errorf("iteration end date cannot precede its start date")
	}
	return nil
}

func (v *ValidationUtil) ValidateAssignment(assignment model.TaskAssignment) error {
	if assignment.TaskID == "" {
		return fmt.Errorf("assignment task ID cannot be empty")
	}
	if assignment.AssigneeID == "" {
		return fmt.Errorf("assignment assignee ID cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateComment(comment model.Comment) error {
	if comment.TaskID == "" {
		return fmt.Errorf("comment task ID cannot be empty")
	}
	if comment.Body == "" {
		return fmt.Errorf("comment body cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateDocument(document model.Document) error {
	if document.TaskID == "" {
		return fmt.Errorf("document task ID cannot be empty")
	}
	if document.FileName == "" {
		return fmt.Errorf("document file name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateNotification(notification model.Notification) error {
	if notification.UserID == "" {
		return fmt.Errorf("notification user ID cannot be empty")
	}
	if notification.Message == "" {
		return fmt.Errorf("notification message cannot be empty")
	}
	return nil
}
