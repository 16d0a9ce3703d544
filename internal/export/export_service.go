package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/agency"
	"uns-visa/internal/dispatch"
	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
	exporterrors "uns-visa/internal/export/errors"
)

// GeneratedForm is a built workbook plus the filename it should be served as.
type GeneratedForm struct {
	Filename string
	File     *excelize.File
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	GenerateForm(ctx context.Context, formType, employeeID string) (*GeneratedForm, error)
}

type service struct {
	employeeRepo employee.Repository
	agencyRepo   agency.Repository
	dispatchRepo dispatch.Repository
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	employeeRepo employee.Repository,
	agencyRepo agency.Repository,
	dispatchRepo dispatch.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		agencyRepo:   agencyRepo,
		dispatchRepo: dispatchRepo,
		logger:       l,
		now:          time.Now,
	}
}

func (s *service) GenerateForm(ctx context.Context, formType, employeeID string) (*GeneratedForm, error) {
	if _, ok := formTitles[formType]; !ok {
		return nil, exporterrors.ErrUnknownFormType
	}

	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	ag, err := s.agencyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exporterrors.ErrAgencyNotConfigured
		}
		return nil, err
	}

	data := FormData{
		FormType:         formType,
		Nationality:      emp.Nationality,
		DateOfBirth:      emp.BirthDate,
		FamilyName:       emp.FamilyName,
		GivenName:        emp.GivenName,
		NameKana:         joinNonEmpty(emp.FamilyNameKana, emp.GivenNameKana),
		Sex:              emp.Sex,
		AddressJapan:     joinNonEmpty(emp.Address, emp.Apartment),
		Phone:            emp.Phone,
		PassportNumber:   emp.PassportNumber,
		PassportExpireAt: emp.PassportExpireAt,
		VisaStatus:       emp.VisaType,
		VisaExpireDate:   emp.VisaExpireDate,
		ResidenceCardNo:  emp.ResidenceCardNo,
		Education:        emp.Education,

		EmployerName:       ag.Name,
		CorporationNumber:  ag.CorporationNumber,
		DispatchLicenseNo:  ag.DispatchLicenseNo,
		EmployerAddress:    ag.Address,
		EmployerPhone:      ag.Phone,
		RepresentativeName: ag.RepresentativeName,
		RepresentativeRole: ag.RepresentativeRole,
	}

	// A worker between assignments still gets a form, just without the
	// client-site block.
	assignment, err := s.dispatchRepo.FindActiveByEmployeeID(ctx, emp.ID)
	switch {
	case err == nil:
		data.WorkLocationName = assignment.ClientCompany.Name
		data.WorkLocationAddress = assignment.ClientCompany.Address
		data.WorkLocationPhone = assignment.ClientCompany.Phone
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}

	file, err := BuildForm(data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("application form generated",
		zap.String("form_type", formType),
		zap.String("employee_code", emp.EmployeeCode))

	filename := fmt.Sprintf("visa_%s_%s_%s.xlsx",
		formType, emp.EmployeeCode, s.now().Format("2006-01-02"))

	return &GeneratedForm{Filename: filename, File: file}, nil
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
