package employee_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
	employeeMock "uns-visa/internal/employee/mock"
	kafkaMock "uns-visa/internal/messaging/kafka/mock"
	counterMock "uns-visa/internal/shared/counter/mock"
	"uns-visa/internal/validation"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(gdb, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success - auto generate employee code", func(t *testing.T) {
		req := employee.CreateEmployeeRequest{
			FamilyName:      "GARCIA",
			GivenName:       "MARIA",
			Nationality:     "フィリピン",
			PostalCode:      "4570071",
			VisaType:        "技能実習1号",
			VisaExpireDate:  "2027-01-31",
			ResidenceCardNo: "ab12345678cd",
			HireDate:        "2026-01-15",
		}
		period := time.Now().UTC().Format("200601")

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.counter.EXPECT().
			GetNextValue(ctx, "employee_code", period).
			Return(int64(123), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, fmt.Sprintf("UNS-%s-0123", period), e.EmployeeCode)
				assert.Equal(t, "GARCIA", e.FamilyName)
				// card number normalized to upper case, postal reformatted
				assert.Equal(t, "AB12345678CD", e.ResidenceCardNo)
				assert.Equal(t, "457-0071", e.PostalCode)
				assert.Equal(t, employee.StatusActive, e.EmploymentStatus)
				return nil
			})

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)

		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		deps.redismock.ExpectDel(employee.EmployeeStatsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "GARCIA MARIA", resp.FullName)
		assert.NotNil(t, resp.VisaDeadline)
	})

	t.Run("invalid residence card rejected before any write", func(t *testing.T) {
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FamilyName:      "X",
			ResidenceCardNo: "NOT-A-CARD",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidResidenceCard)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FamilyName:     "X",
			VisaExpireDate: "31-01-2027",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
	})

	t.Run("duplicate employee code maps to conflict", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FamilyName:   "X",
			EmployeeCode: "UNS-202601-0001",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("found with deadline classification", func(t *testing.T) {
		id := uuid.New()
		expire := time.Now().UTC().AddDate(0, 0, 20)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&employee.Employee{
				ID:               id,
				EmployeeCode:     "UNS-202601-0001",
				FamilyName:       "田中",
				VisaExpireDate:   &expire,
				EmploymentStatus: employee.StatusActive,
			}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.NotNil(t, resp.VisaDeadline)
		assert.Equal(t, validation.StatusCritical, resp.VisaDeadline.Status)
		assert.True(t, resp.VisaDeadline.CanRenew)
	})
}

func TestEmployeeService_GetByCardNumber(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	t.Run("malformed card", func(t *testing.T) {
		_, err := deps.service.GetByCardNumber(ctx, "bogus")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidResidenceCard)
	})

	t.Run("lookups run against the normalized card", func(t *testing.T) {
		id := uuid.New()
		deps.repo.EXPECT().
			FindByCardNumber(ctx, "AB12345678CD").
			Return(&employee.Employee{ID: id, ResidenceCardNo: "AB12345678CD"}, nil)

		resp, err := deps.service.GetByCardNumber(ctx, "ab12345678cd")
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})
}

func TestEmployeeService_GetAlerts(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	expireSoon := time.Now().UTC().AddDate(0, 0, 10)
	expireNear := time.Now().UTC().AddDate(0, 0, 45)
	expireLater := time.Now().UTC().AddDate(0, 0, 80)
	deps.repo.EXPECT().
		FindExpiring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, before time.Time) ([]employee.Employee, error) {
			// default window when the caller passes zero
			assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, employee.AlertWindowDays), before, time.Minute)
			return []employee.Employee{
				{ID: uuid.New(), EmployeeCode: "UNS-202601-0002", VisaExpireDate: &expireSoon, EmploymentStatus: employee.StatusActive},
				{ID: uuid.New(), EmployeeCode: "UNS-202601-0003", VisaExpireDate: &expireNear, EmploymentStatus: employee.StatusActive},
				{ID: uuid.New(), EmployeeCode: "UNS-202601-0004", VisaExpireDate: &expireLater, EmploymentStatus: employee.StatusActive},
			}, nil
		})

	resp, err := deps.service.GetAlerts(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 1, resp.Critical)
	assert.Len(t, resp.Alerts, 3)
	// 30 and 60 days split the urgency tiers
	assert.Equal(t, employee.UrgencyCritical, resp.Alerts[0].Urgency)
	assert.Equal(t, employee.UrgencyWarning, resp.Alerts[1].Urgency)
	assert.Equal(t, employee.UrgencyInfo, resp.Alerts[2].Urgency)
	assert.Equal(t, validation.StatusCritical, resp.Alerts[0].VisaDeadline.Status)
}

func TestEmployeeService_UpdateRetireDateRetiresWorker(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	id := uuid.New()
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		FindByID(ctx, id.String()).
		Return(&employee.Employee{
			ID:               id,
			EmployeeCode:     "UNS-202601-0005",
			FamilyName:       "田中",
			EmploymentStatus: employee.StatusActive,
		}, nil)
	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *employee.Employee) error {
			assert.NotNil(t, e.RetireDate)
			assert.Equal(t, employee.StatusInactive, e.EmploymentStatus)
			return nil
		})
	deps.redismock.ExpectDel(employee.EmployeeStatsKey).SetVal(1)

	resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
		FamilyName: "田中",
		RetireDate: "2026-03-31",
	})
	assert.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, resp.EmploymentStatus)
}

func TestEmployeeService_GetStats(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()

	expired := time.Now().UTC().AddDate(0, 0, -5)
	critical := time.Now().UTC().AddDate(0, 0, 15)
	warning := time.Now().UTC().AddDate(0, 0, 60)

	deps.redismock.ExpectGet(employee.EmployeeStatsKey).RedisNil()
	deps.repo.EXPECT().CountByStatus(ctx).Return(int64(10), int64(2), nil)
	deps.repo.EXPECT().CountByNationality(ctx).Return([]employee.NationalityCount{
		{Nationality: "ベトナム", Count: 6},
		{Nationality: "フィリピン", Count: 4},
	}, nil)
	deps.repo.EXPECT().
		FindExpiring(ctx, gomock.Any()).
		Return([]employee.Employee{
			{VisaExpireDate: &expired},
			{VisaExpireDate: &critical},
			{VisaExpireDate: &warning},
		}, nil)
	deps.redismock.Regexp().ExpectSet(employee.EmployeeStatsKey, `.*`, 5*time.Minute).SetVal("OK")

	stats, err := deps.service.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, int64(10), stats.Active)
	assert.Equal(t, int64(1), stats.VisaExpired)
	assert.Equal(t, int64(1), stats.VisaCritical)
	assert.Equal(t, int64(1), stats.VisaWarning)
	assert.Len(t, stats.ByNationality, 2)
}
