package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
)

func TestMarkAllSeenOnlyTouchesUnseenRowsOfUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewNotificationDAO(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_seen"=\$1 WHERE company_id = \$2 AND \(?user_id = \$3 AND is_seen = false\)?`).
		WithArgs(true, "co-a", "u1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	updated, err := dao.MarkAllSeen(context.Background(), auth.Scope{CompanyID: "co-a"}, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAllSeenSecondRunIsNoOp(t *testing.T) {
	gdb, mock := newMockDB(t)
	dao := NewNotificationDAO(gdb)

	// The is_seen = false filter means a repeat run matches nothing.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_seen"=\$1 WHERE company_id = \$2 AND \(?user_id = \$3 AND is_seen = false\)?`).
		WithArgs(true, "co-a", "u1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "is_seen"=\$1 WHERE company_id = \$2 AND \(?user_id = \$3 AND is_seen = false\)?`).
		WithArgs(true, "co-a", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	first, err := dao.MarkAllSeen(context.Background(), auth.Scope{CompanyID: "co-a"}, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, first)

	second, err := dao.MarkAllSeen(context.Background(), auth.Scope{CompanyID: "co-a"}, "u1")
	require.NoError(t, err)
	assert.Zero(t, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}
