package dao

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
)

func TestGetTaskFiltersByCompany(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewTaskDAO(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "company_id", "created_at", "updated_at"}).
		AddRow("task-1", "Calibrate gauges", "open", "co-a", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE company_id = \$1 AND id = \$2`).
		WillReturnRows(rows)

	task, err := dao.GetTask(context.Background(), auth.Scope{CompanyID: "co-a"}, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "co-a", task.CompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskForeignTenantIsNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewTaskDAO(gdb)

	// The foreign row exists but the tenant filter excludes it, so the
	// query legitimately returns nothing.
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE company_id = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := dao.GetTask(context.Background(), auth.Scope{CompanyID: "co-a"}, "task-owned-by-co-b")
	assert.ErrorIs(t, err, qms_errors.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskAllScopeSkipsCompanyFilter(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewTaskDAO(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "status", "company_id"}).
		AddRow("task-1", "Calibrate gauges", "open", "co-b")
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1`).
		WillReturnRows(rows)

	task, err := dao.GetTask(context.Background(), auth.Scope{All: true}, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "co-b", task.CompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTaskMissingRowIsNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewTaskDAO(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET "deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := dao.DeleteTask(context.Background(), auth.Scope{CompanyID: "co-a"}, "missing")
	assert.ErrorIs(t, err, qms_errors.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTasksScopesAndPaginates(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewTaskDAO(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "company_id"}).
		AddRow("task-2", "Review NCR", "co-a").
		AddRow("task-1", "Calibrate gauges", "co-a")
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE company_id = \$1 AND "tasks"\."deleted_at" IS NULL ORDER BY created_at DESC`).
		WillReturnRows(rows)

	tasks, err := dao.ListTasks(context.Background(), auth.Scope{CompanyID: "co-a"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
