package importsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"uns-visa/internal/employee"
)

func TestRunnerEndToEnd(t *testing.T) {
	empStore := newFakeEmployeeStore()
	empStore.byCode["UNS-202401-0001"] = &employee.Employee{
		EmployeeCode:     "UNS-202401-0001",
		FamilyName:       "田中",
		GivenName:        "太郎",
		Nationality:      "ベトナム",
		EmploymentStatus: "active",
	}
	compStore := &fakeCompanyStore{}
	runner := NewRunner(NewReconciler(empStore, compStore, zap.NewNop()), zap.NewNop())

	factories := []FactoryDoc{
		{ClientCompany: FactoryCompany{Name: "株式会社デンソー岡崎", Address: "愛知県岡崎市橋目町1"}},
		{}, // nameless factory file: skipped
	}
	rows := []Row{
		{ColEmployeeCode: "", ColName: "見出し行の残骸"}, // no code: dropped silently
		{ColEmployeeCode: "UNS-202401-0002", ColName: "GARCIA MARIA", ColVisaExpire: "2026-01-31"},
		{ColEmployeeCode: "UNS-202401-0001", ColVisaExpire: "2026-06-30"},
	}

	summary, err := runner.Run(context.Background(), factories, rows)
	assert.NoError(t, err)

	assert.Equal(t, 2, summary.Created) // one worker, one company
	assert.Equal(t, 1, summary.Updated)
	// the keyless row and the nameless factory enter no count at all
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Errors)
	assert.Len(t, summary.Imported, 3)
	// the worker pass runs to completion before the company pass starts
	assert.Equal(t, "GARCIA MARIA", summary.Imported[0].Name)
	assert.Equal(t, "株式会社デンソー岡崎", summary.Imported[2].Name)

	// the update touched only the visa expiry; the rest survived
	stored := empStore.byCode["UNS-202401-0001"]
	assert.Equal(t, "田中", stored.FamilyName)
	assert.Equal(t, "ベトナム", stored.Nationality)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *stored.VisaExpireDate)

	// rerunning the same input changes nothing but the created/updated split
	summary2, err := runner.Run(context.Background(), factories, rows)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary2.Created) // company now skipped, workers both update
	assert.Equal(t, 2, summary2.Updated)
	assert.Equal(t, 1, summary2.Skipped) // only the matched company counts as skipped
	assert.Len(t, empStore.byCode, 2)
	assert.Equal(t, 1, compStore.creates)
}

func TestRunnerRecordsScopedFailures(t *testing.T) {
	empStore := newFakeEmployeeStore()
	empStore.createErr = &ReconcileError{Kind: KindDuplicateKey, Key: "UNS-202401-0009", Err: errors.New("unique violation")}
	runner := NewRunner(NewReconciler(empStore, &fakeCompanyStore{}, zap.NewNop()), zap.NewNop())

	summary, err := runner.Run(context.Background(), nil, []Row{
		{ColEmployeeCode: "UNS-202401-0009", ColName: "X Y"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Errors, 1)
	assert.Equal(t, "UNS-202401-0009", summary.Errors[0].Key)
}

func TestRunnerAbortsOnUnscopedError(t *testing.T) {
	empStore := newFakeEmployeeStore()
	empStore.createErr = errors.New("dial tcp: connection refused")
	runner := NewRunner(NewReconciler(empStore, &fakeCompanyStore{}, zap.NewNop()), zap.NewNop())

	rows := []Row{
		{ColEmployeeCode: "UNS-202401-0010", ColName: "A B"},
		{ColEmployeeCode: "UNS-202401-0011", ColName: "C D"},
	}
	summary, err := runner.Run(context.Background(), nil, rows)
	assert.Error(t, err)
	// the run stopped at the first record instead of burning through the rest
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Created)
}
