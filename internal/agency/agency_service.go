package agency

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	agencyerrors "uns-visa/internal/agency/errors"
)

//go:generate mockgen -source=agency_service.go -destination=mock/agency_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (AgencyResponse, error)
	Save(ctx context.Context, req SaveAgencyRequest) (AgencyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("agency.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agency.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context) (AgencyResponse, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AgencyResponse{}, agencyerrors.ErrAgencyNotFound
		}
		s.logger.Error("get agency profile failed", zap.Error(err))
		return AgencyResponse{}, err
	}
	return toAgencyResponse(a), nil
}

func (s *service) Save(ctx context.Context, req SaveAgencyRequest) (AgencyResponse, error) {
	a := &Agency{
		Name:               req.Name,
		NameKana:           req.NameKana,
		CorporationNumber:  req.CorporationNumber,
		DispatchLicenseNo:  req.DispatchLicenseNo,
		PostalCode:         req.PostalCode,
		Address:            req.Address,
		Phone:              req.Phone,
		RepresentativeName: req.RepresentativeName,
		RepresentativeRole: req.RepresentativeRole,
	}
	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.Error("save agency profile failed", zap.Error(err))
		return AgencyResponse{}, err
	}

	s.logger.Info("agency profile saved", zap.String("name", a.Name))
	return toAgencyResponse(a), nil
}
