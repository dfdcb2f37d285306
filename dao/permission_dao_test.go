package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

func TestHasPermissionExactTriple(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewPermissionDAO(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "permissions" WHERE role_id = \$1 AND module_id = \$2 AND action = \$3`).
		WithArgs("role-1", model.ModuleTasks, "write").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	allowed, err := dao.HasPermission(context.Background(), "role-1", model.ModuleTasks, model.ActionWrite)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasPermissionAbsentTripleDenies(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewPermissionDAO(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "permissions" WHERE role_id = \$1 AND module_id = \$2 AND action = \$3`).
		WithArgs("role-1", model.ModuleModules, "write").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	allowed, err := dao.HasPermission(context.Background(), "role-1", model.ModuleModules, model.ActionWrite)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePermissionDuplicateTripleIsConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewPermissionDAO(gdb)

	// The idx_role_module_action unique index rejects a second grant of
	// the same triple; the driver's 23505 must surface as a conflict.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "permissions"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_role_module_action"})
	mock.ExpectRollback()

	_, err := dao.CreatePermission(context.Background(), model.Permission{
		RoleID:   "role-1",
		ModuleID: model.ModuleTasks,
		Action:   model.ActionWrite,
	})
	assert.ErrorIs(t, err, qms_errors.ErrPermissionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePermissionMissingRowIsNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewPermissionDAO(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "permissions" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := dao.DeletePermission(context.Background(), "missing")
	assert.ErrorIs(t, err, qms_errors.ErrPermissionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
