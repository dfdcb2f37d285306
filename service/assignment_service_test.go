// service/assignment_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type fakeNotifications struct {
	INotificationService

	dispatched []model.Notification
}

func (f *fakeNotifications) Dispatch(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	f.dispatched = append(f.dispatched, notification)
	notification.ID = "n1"
	return &notification, nil
}

func newMockedAssignmentService(t *testing.T) (*AssignmentService, sqlmock.Sqlmock, *fakeNotifications) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
		TranslateError:       true,
	})
	require.NoError(t, err)

	notifications := &fakeNotifications{}
	svc := NewAssignmentService(
		dao.NewAssignmentDAO(gdb),
		dao.NewTaskDAO(gdb),
		util.NewValidationUtil(),
		notifications,
		util.NewEventBus(),
	)
	return svc, mock, notifications
}

func TestCreateAssignmentNotifiesAssignee(t *testing.T) {
	svc, mock, notifications := newMockedAssignmentService(t)

	taskRows := sqlmock.NewRows([]string{"id", "title", "status", "company_id"}).
		AddRow("task-1", "Calibrate gauges", "open", "co-a")
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE company_id = \$1 AND id = \$2`).
		WillReturnRows(taskRows)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "task_assignments"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assignment, err := svc.CreateAssignment(context.Background(), auth.Scope{CompanyID: "co-a"}, model.TaskAssignment{
		TaskID:     "task-1",
		AssigneeID: "u2",
	}, "u1")
	require.NoError(t, err)

	assert.Equal(t, "co-a", assignment.CompanyID, "assignment inherits the task's tenant")
	assert.Equal(t, "u1", assignment.AssignedBy)

	require.Len(t, notifications.dispatched, 1)
	notification := notifications.dispatched[0]
	assert.Equal(t, "u2", notification.UserID, "the assignee is notified, not the assigner")
	assert.Equal(t, "co-a", notification.CompanyID)
	assert.Contains(t, notification.Message, "Calibrate gauges")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignmentForeignTaskIsNotFound(t *testing.T) {
	svc, mock, notifications := newMockedAssignmentService(t)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE company_id = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.CreateAssignment(context.Background(), auth.Scope{CompanyID: "co-a"}, model.TaskAssignment{
		TaskID:     "task-owned-by-co-b",
		AssigneeID: "u2",
	}, "u1")

	assert.ErrorIs(t, err, qms_errors.ErrTaskNotFound)
	assert.Empty(t, notifications.dispatched, "no notification for a failed assignment")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignmentRejectsMissingAssignee(t *testing.T) {
	svc, _, notifications := newMockedAssignmentService(t)

	_, err := svc.CreateAssignment(context.Background(), auth.Scope{CompanyID: "co-a"}, model.TaskAssignment{
		TaskID: "task-1",
	}, "u1")

	assert.Error(t, err)
	assert.Empty(t, notifications.dispatched)
}
