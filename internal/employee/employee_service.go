package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	employeeerrors "uns-visa/internal/employee/errors"
	"uns-visa/internal/events"
	"uns-visa/internal/messaging/kafka"
	"uns-visa/internal/shared/contextutil"
	"uns-visa/internal/shared/counter"
	"uns-visa/internal/validation"
)

const (
	EmployeeStatsKey  = "employees:stats"
	statsCacheTTL     = 5 * time.Minute
	employeeCodeSeq   = "employee_code"
	dateLayout        = "2006-01-02"
	AlertWindowDays   = 90
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByCardNumber(ctx context.Context, cardNo string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	GetAlerts(ctx context.Context, withinDays int) (VisaAlertListResponse, error)
	GetStats(ctx context.Context) (EmployeeStatsResponse, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(db *gorm.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
	)

	empl := &Employee{
		ID:               uuid.New(),
		EmployeeCode:     req.EmployeeCode,
		EmploymentStatus: StatusActive,
	}
	if req.EmploymentStatus != "" {
		empl.EmploymentStatus = req.EmploymentStatus
	}
	if err := s.applyFields(empl, fieldSet{
		FamilyName: req.FamilyName, GivenName: req.GivenName,
		FamilyNameKana: req.FamilyNameKana, GivenNameKana: req.GivenNameKana,
		Sex: req.Sex, MaritalStatus: req.MaritalStatus,
		Nationality: req.Nationality, BirthDate: req.BirthDate,
		PostalCode: req.PostalCode, Address: req.Address, Apartment: req.Apartment,
		Phone: req.Phone, Email: req.Email, VisaType: req.VisaType,
		PeriodOfStay: req.PeriodOfStay,
		VisaExpireDate: req.VisaExpireDate, ResidenceCardNo: req.ResidenceCardNo,
		PassportNumber: req.PassportNumber, PassportExpireAt: req.PassportExpireAt,
		HireDate: req.HireDate, Education: req.Education, Notes: req.Notes,
	}); err != nil {
		return EmployeeResponse{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if empl.EmployeeCode == "" {
			period := s.now().Format("200601")
			nextVal, err := s.counter.GetNextValue(ctx, employeeCodeSeq, period)
			if err != nil {
				s.logger.Error("create employee generate code failed", zap.Error(err))
				return err
			}
			empl.EmployeeCode = fmt.Sprintf("UNS-%s-%04d", period, nextVal)
		}

		if err := qtx.Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if s.outbox != nil {
			event := events.EmployeeCreatedEvent{
				EventType:    "employee_created",
				RequestID:    rid,
				EmployeeID:   empl.ID.String(),
				EmployeeCode: empl.EmployeeCode,
				OccurredAt:   s.now(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   empl.ID.String(),
				EventType:     event.EventType,
				Topic:         events.EmployeeCreatedTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("create employee outbox persist failed",
					zap.String("employee_id", empl.ID.String()),
					zap.Error(err),
				)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateStats(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)
	return s.mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return s.mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*empl), nil
}

func (s *service) GetByCardNumber(ctx context.Context, cardNo string) (EmployeeResponse, error) {
	card, ok := validation.ResidenceCard(cardNo)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidResidenceCard
	}
	empl, err := s.repo.FindByCardNumber(ctx, card)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	var empl *Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		var err error
		empl, err = qtx.FindByID(ctx, id)
		if err != nil {
			s.logger.Error("update employee fetch existing failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := s.applyFields(empl, fieldSet{
			FamilyName: req.FamilyName, GivenName: req.GivenName,
			FamilyNameKana: req.FamilyNameKana, GivenNameKana: req.GivenNameKana,
			Sex: req.Sex, MaritalStatus: req.MaritalStatus,
			Nationality: req.Nationality, BirthDate: req.BirthDate,
			PostalCode: req.PostalCode, Address: req.Address, Apartment: req.Apartment,
			Phone: req.Phone, Email: req.Email, VisaType: req.VisaType,
			PeriodOfStay: req.PeriodOfStay,
			VisaExpireDate: req.VisaExpireDate, ResidenceCardNo: req.ResidenceCardNo,
			PassportNumber: req.PassportNumber, PassportExpireAt: req.PassportExpireAt,
			HireDate: req.HireDate, RetireDate: req.RetireDate,
			Education: req.Education, Notes: req.Notes,
		}); err != nil {
			return err
		}
		if req.EmploymentStatus != "" {
			empl.EmploymentStatus = req.EmploymentStatus
		}
		// a recorded termination date means the worker has left
		if empl.RetireDate != nil {
			empl.EmploymentStatus = StatusInactive
		}

		if err := qtx.Update(ctx, empl); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateStats(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return s.mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	s.invalidateStats(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// GetAlerts lists active workers whose visa expires within the window,
// soonest first, each carrying its deadline classification and an urgency
// tier for the dashboard.
func (s *service) GetAlerts(ctx context.Context, withinDays int) (VisaAlertListResponse, error) {
	if withinDays <= 0 {
		withinDays = AlertWindowDays
	}
	today := s.now()
	emps, err := s.repo.FindExpiring(ctx, today.AddDate(0, 0, withinDays))
	if err != nil {
		s.logger.Error("get visa alerts failed", zap.Error(err))
		return VisaAlertListResponse{}, mapRepositoryError(err)
	}

	resp := VisaAlertListResponse{Alerts: []VisaAlertResponse{}}
	for _, e := range emps {
		if e.VisaExpireDate == nil {
			continue
		}
		a := VisaAlertResponse{EmployeeResponse: s.mapToResponse(e)}
		switch d := validation.Deadline(*e.VisaExpireDate, today).DaysRemaining; {
		case d <= 30:
			a.Urgency = UrgencyCritical
			resp.Critical++
		case d <= 60:
			a.Urgency = UrgencyWarning
		default:
			a.Urgency = UrgencyInfo
		}
		resp.Alerts = append(resp.Alerts, a)
	}
	resp.Total = len(resp.Alerts)
	return resp, nil
}

func (s *service) GetStats(ctx context.Context) (EmployeeStatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeStatsKey).Result(); err == nil {
			var resp EmployeeStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeStatsKey, func() (interface{}, error) {
		resp, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeStatsKey, jsonData, statsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return EmployeeStatsResponse{}, err
	}
	return v.(EmployeeStatsResponse), nil
}

func (s *service) computeStats(ctx context.Context) (EmployeeStatsResponse, error) {
	active, inactive, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return EmployeeStatsResponse{}, mapRepositoryError(err)
	}
	byNat, err := s.repo.CountByNationality(ctx)
	if err != nil {
		return EmployeeStatsResponse{}, mapRepositoryError(err)
	}

	resp := EmployeeStatsResponse{
		Total:         active + inactive,
		Active:        active,
		Inactive:      inactive,
		ByNationality: byNat,
	}

	today := s.now()
	expiring, err := s.repo.FindExpiring(ctx, today.AddDate(0, 0, AlertWindowDays))
	if err != nil {
		return EmployeeStatsResponse{}, mapRepositoryError(err)
	}
	for _, e := range expiring {
		if e.VisaExpireDate == nil {
			continue
		}
		switch validation.Deadline(*e.VisaExpireDate, today).Status {
		case validation.StatusExpired:
			resp.VisaExpired++
		case validation.StatusCritical:
			resp.VisaCritical++
		case validation.StatusWarning:
			resp.VisaWarning++
		}
	}
	return resp, nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeStatsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee stats cache",
			zap.Error(err),
			zap.String("key", EmployeeStatsKey),
		)
	}
}

// fieldSet carries the writable fields shared by create and update requests.
type fieldSet struct {
	FamilyName, GivenName, FamilyNameKana, GivenNameKana string
	Sex, MaritalStatus, Nationality, BirthDate           string
	PostalCode, Address, Apartment, Phone, Email         string
	VisaType, PeriodOfStay, VisaExpireDate               string
	ResidenceCardNo                                      string
	PassportNumber, PassportExpireAt                     string
	HireDate, RetireDate                                 string
	Education, Notes                                     string
}

// applyFields validates and copies request fields onto the entity. The
// interactive API is strict where batch import is lenient: a malformed card
// number, postal code, phone or date here rejects the request.
func (s *service) applyFields(e *Employee, f fieldSet) error {
	if f.ResidenceCardNo != "" {
		card, ok := validation.ResidenceCard(f.ResidenceCardNo)
		if !ok {
			return employeeerrors.ErrInvalidResidenceCard
		}
		e.ResidenceCardNo = card
	} else {
		e.ResidenceCardNo = ""
	}

	postal, ok := validation.PostalCode(f.PostalCode)
	if !ok {
		return employeeerrors.ErrInvalidPostalCode
	}
	phone, ok := validation.PhoneJapan(f.Phone)
	if !ok {
		return employeeerrors.ErrInvalidPhone
	}

	birthDate, err := parseDate(f.BirthDate)
	if err != nil {
		return err
	}
	visaExpire, err := parseDate(f.VisaExpireDate)
	if err != nil {
		return err
	}
	passportExpire, err := parseDate(f.PassportExpireAt)
	if err != nil {
		return err
	}
	hireDate, err := parseDate(f.HireDate)
	if err != nil {
		return err
	}
	retireDate, err := parseDate(f.RetireDate)
	if err != nil {
		return err
	}

	e.FamilyName = f.FamilyName
	e.GivenName = f.GivenName
	e.FamilyNameKana = f.FamilyNameKana
	e.GivenNameKana = f.GivenNameKana
	e.Sex = f.Sex
	e.MaritalStatus = f.MaritalStatus
	e.Nationality = f.Nationality
	e.BirthDate = birthDate
	e.PostalCode = postal
	e.Address = f.Address
	e.Apartment = f.Apartment
	e.Phone = phone
	e.Email = f.Email
	e.VisaType = f.VisaType
	e.PeriodOfStay = f.PeriodOfStay
	e.VisaExpireDate = visaExpire
	e.PassportNumber = f.PassportNumber
	e.PassportExpireAt = passportExpire
	e.HireDate = hireDate
	e.RetireDate = retireDate
	e.Education = f.Education
	e.Notes = f.Notes
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &t, nil
}

func (s *service) mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID.String(),
		EmployeeCode:     e.EmployeeCode,
		FamilyName:       e.FamilyName,
		GivenName:        e.GivenName,
		FullName:         e.FullName(),
		Sex:              e.Sex,
		MaritalStatus:    e.MaritalStatus,
		Nationality:      e.Nationality,
		BirthDate:        formatDate(e.BirthDate),
		PostalCode:       e.PostalCode,
		Address:          e.Address,
		Apartment:        e.Apartment,
		Phone:            e.Phone,
		Email:            e.Email,
		VisaType:         e.VisaType,
		PeriodOfStay:     e.PeriodOfStay,
		VisaExpireDate:   formatDate(e.VisaExpireDate),
		ResidenceCardNo:  e.ResidenceCardNo,
		PassportNumber:   e.PassportNumber,
		PassportExpireAt: formatDate(e.PassportExpireAt),
		HireDate:         formatDate(e.HireDate),
		RetireDate:       formatDate(e.RetireDate),
		EmploymentStatus: e.EmploymentStatus,
		Education:        e.Education,
		Notes:            e.Notes,
	}
	if e.VisaExpireDate != nil {
		info := validation.Deadline(*e.VisaExpireDate, s.now())
		resp.VisaDeadline = &info
	}
	return resp
}

func (s *service) mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = s.mapToResponse(e)
	}
	return res
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
