package clientcompany

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	clientcompanyerrors "uns-visa/internal/clientcompany/errors"
	"uns-visa/internal/shared/contextutil"
	"uns-visa/internal/validation"
)

const (
	CompanyStatsKey = "clientcompanies:stats"
	statsCacheTTL   = 5 * time.Minute
	dateLayout      = "2006-01-02"
)

//go:generate mockgen -source=clientcompany_service.go -destination=mock/clientcompany_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context, includeInactive bool) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Search(ctx context.Context, query string) ([]CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	Deactivate(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	GetStats(ctx context.Context) (CompanyStatsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("clientcompany.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clientcompany.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create client company requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	corpNum, ok := validation.CorporationNumber(req.CorporationNumber)
	if !ok {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidCorporationNumber
	}
	insNum, ok := validation.InsuranceNumber(req.EmploymentInsuranceNumber)
	if !ok {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidInsuranceNumber
	}
	phone, ok := validation.PhoneJapan(req.Phone)
	if !ok {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidPhone
	}
	postal, ok := validation.PostalCode(req.PostalCode)
	if !ok {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidPostalCode
	}

	contractStart, err := parseDate(req.ContractStartDate)
	if err != nil {
		return CompanyResponse{}, err
	}
	contractEnd, err := parseDate(req.ContractEndDate)
	if err != nil {
		return CompanyResponse{}, err
	}

	prefecture := validation.ParsePrefecture(req.Address)
	if err := s.checkDuplicate(ctx, corpNum, req.Name, prefecture); err != nil {
		return CompanyResponse{}, err
	}

	c := &ClientCompany{
		ID:                        uuid.New(),
		Name:                      req.Name,
		BranchName:                req.BranchName,
		CorporationNumber:         corpNum,
		EmploymentInsuranceNumber: insNum,
		PostalCode:                postal,
		Address:                   req.Address,
		Prefecture:                prefecture,
		Phone:                     phone,
		Fax:                       req.Fax,
		ResponsiblePerson:         req.ResponsiblePerson,
		BusinessType:              req.BusinessType,
		Capital:                   req.Capital,
		AnnualSales:               req.AnnualSales,
		TotalEmployees:            req.TotalEmployees,
		ForeignEmployees:          req.ForeignEmployees,
		TraineeCount:              req.TraineeCount,
		ContractStatus:            ContractActive,
		ContractStartDate:         contractStart,
		ContractEndDate:           contractEnd,
		Notes:                     req.Notes,
		IsActive:                  true,
	}
	if req.ContractStatus != "" {
		c.ContractStatus = req.ContractStatus
	}
	for _, p := range req.Plants {
		c.Plants = append(c.Plants, Plant{
			ID:              uuid.New(),
			ClientCompanyID: c.ID,
			Name:            p.Name,
			Address:         p.Address,
			Phone:           p.Phone,
		})
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create client company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.invalidateStats(ctx)
	s.logger.Info("create client company success",
		zap.String("request_id", rid),
		zap.String("company_id", c.ID.String()),
	)
	return mapToResponse(*c), nil
}

// checkDuplicate applies the same matching policy batch import uses:
// corporation number first, then (name, prefecture).
func (s *service) checkDuplicate(ctx context.Context, corpNum, name, prefecture string) error {
	if corpNum != "" {
		_, err := s.repo.FindByCorporationNumber(ctx, corpNum)
		if err == nil {
			return clientcompanyerrors.ErrCompanyAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return mapRepositoryError(err)
		}
	}
	_, err := s.repo.FindByNameAndPrefecture(ctx, name, prefecture)
	if err == nil {
		return clientcompanyerrors.ErrCompanyAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) GetAll(ctx context.Context, includeInactive bool) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx, includeInactive)
	if err != nil {
		s.logger.Error("get all client companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidCompanyID
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Search(ctx context.Context, query string) ([]CompanyResponse, error) {
	companies, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(companies), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	s.logger.Debug("update client company requested", zap.String("company_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, clientcompanyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.BranchName != nil {
		c.BranchName = *req.BranchName
	}
	if req.CorporationNumber != nil {
		corpNum, ok := validation.CorporationNumber(*req.CorporationNumber)
		if !ok {
			return CompanyResponse{}, clientcompanyerrors.ErrInvalidCorporationNumber
		}
		c.CorporationNumber = corpNum
	}
	if req.EmploymentInsuranceNumber != nil {
		insNum, ok := validation.InsuranceNumber(*req.EmploymentInsuranceNumber)
		if !ok {
			return CompanyResponse{}, clientcompanyerrors.ErrInvalidInsuranceNumber
		}
		c.EmploymentInsuranceNumber = insNum
	}
	if req.PostalCode != nil {
		postal, ok := validation.PostalCode(*req.PostalCode)
		if !ok {
			return CompanyResponse{}, clientcompanyerrors.ErrInvalidPostalCode
		}
		c.PostalCode = postal
	}
	if req.Address != nil {
		c.Address = *req.Address
		c.Prefecture = validation.ParsePrefecture(*req.Address)
	}
	if req.Phone != nil {
		phone, ok := validation.PhoneJapan(*req.Phone)
		if !ok {
			return CompanyResponse{}, clientcompanyerrors.ErrInvalidPhone
		}
		c.Phone = phone
	}
	if req.Fax != nil {
		c.Fax = *req.Fax
	}
	if req.ResponsiblePerson != nil {
		c.ResponsiblePerson = *req.ResponsiblePerson
	}
	if req.BusinessType != nil {
		c.BusinessType = *req.BusinessType
	}
	if req.Capital != nil {
		c.Capital = req.Capital
	}
	if req.AnnualSales != nil {
		c.AnnualSales = req.AnnualSales
	}
	if req.TotalEmployees != nil {
		c.TotalEmployees = req.TotalEmployees
	}
	if req.ForeignEmployees != nil {
		c.ForeignEmployees = req.ForeignEmployees
	}
	if req.TraineeCount != nil {
		c.TraineeCount = *req.TraineeCount
	}
	if req.ContractStatus != nil {
		c.ContractStatus = *req.ContractStatus
	}
	if req.ContractStartDate != nil {
		d, err := parseDate(*req.ContractStartDate)
		if err != nil {
			return CompanyResponse{}, err
		}
		c.ContractStartDate = d
	}
	if req.ContractEndDate != nil {
		d, err := parseDate(*req.ContractEndDate)
		if err != nil {
			return CompanyResponse{}, err
		}
		c.ContractEndDate = d
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update client company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.invalidateStats(ctx)
	s.logger.Info("update client company success", zap.String("company_id", id))
	return mapToResponse(*c), nil
}

// Deactivate soft-deletes: the record stays for dispatch history but drops
// out of active listings and search.
func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return clientcompanyerrors.ErrInvalidCompanyID
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	c.IsActive = false
	if err := s.repo.Update(ctx, c); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateStats(ctx)
	s.logger.Info("client company deactivated", zap.String("company_id", id))
	return nil
}

func (s *service) HardDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return clientcompanyerrors.ErrInvalidCompanyID
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateStats(ctx)
	s.logger.Info("client company deleted", zap.String("company_id", id))
	return nil
}

func (s *service) GetStats(ctx context.Context) (CompanyStatsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CompanyStatsKey).Result(); err == nil {
			var resp CompanyStatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CompanyStatsKey, func() (interface{}, error) {
		byPref, err := s.repo.CountByPrefecture(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		byType, err := s.repo.CountByBusinessType(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		all, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := CompanyStatsResponse{
			Total:          int64(len(all)),
			ByPrefecture:   byPref,
			ByBusinessType: byType,
		}
		for _, c := range all {
			if c.IsActive {
				resp.Active++
			}
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CompanyStatsKey, jsonData, statsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return CompanyStatsResponse{}, err
	}
	return v.(CompanyStatsResponse), nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CompanyStatsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate client company stats cache",
			zap.Error(err),
			zap.String("key", CompanyStatsKey),
		)
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, clientcompanyerrors.ErrInvalidDate
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func mapToResponse(c ClientCompany) CompanyResponse {
	resp := CompanyResponse{
		ID:                        c.ID.String(),
		Name:                      c.Name,
		BranchName:                c.BranchName,
		CorporationNumber:         c.CorporationNumber,
		EmploymentInsuranceNumber: c.EmploymentInsuranceNumber,
		PostalCode:                c.PostalCode,
		Address:                   c.Address,
		Prefecture:                c.Prefecture,
		Phone:                     c.Phone,
		Fax:                       c.Fax,
		ResponsiblePerson:         c.ResponsiblePerson,
		BusinessType:              c.BusinessType,
		Capital:                   c.Capital,
		AnnualSales:               c.AnnualSales,
		TotalEmployees:            c.TotalEmployees,
		ForeignEmployees:          c.ForeignEmployees,
		TraineeCount:              c.TraineeCount,
		ContractStatus:            c.ContractStatus,
		ContractStartDate:         formatDate(c.ContractStartDate),
		ContractEndDate:           formatDate(c.ContractEndDate),
		Notes:                     c.Notes,
		IsActive:                  c.IsActive,
	}
	for _, p := range c.Plants {
		resp.Plants = append(resp.Plants, PlantResponse{
			ID:      p.ID.String(),
			Name:    p.Name,
			Address: p.Address,
			Phone:   p.Phone,
		})
	}
	return resp
}

func mapToListResponse(companies []ClientCompany) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = mapToResponse(c)
	}
	return res
}
