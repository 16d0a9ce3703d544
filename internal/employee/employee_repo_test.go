package employee_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"uns-visa/internal/employee"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return employee.NewRepository(gdb), mock
}

func TestEmployeeRepository_DeleteRetiresInsteadOfRemoving(t *testing.T) {
	repo, mock := setupRepoTest(t)
	id := uuid.NewString()

	// delete flips employment_status; no row ever leaves the table
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "employees" SET "employment_status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(employee.StatusInactive, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_DeleteUnknownID(t *testing.T) {
	repo, mock := setupRepoTest(t)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employees"`).
		WithArgs(employee.StatusInactive, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
