package ocr

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/employee"
	"uns-visa/internal/validation"
)

// Vision output sometimes carries nationalities in English; the store keeps
// them in Japanese.
var nationalityJa = map[string]string{
	"vietnam":     "ベトナム",
	"vietnamese":  "ベトナム",
	"china":       "中国",
	"chinese":     "中国",
	"philippines": "フィリピン",
	"filipino":    "フィリピン",
	"indonesia":   "インドネシア",
	"indonesian":  "インドネシア",
	"nepal":       "ネパール",
	"nepalese":    "ネパール",
	"brazil":      "ブラジル",
	"brazilian":   "ブラジル",
}

//go:generate mockgen -source=ocr_service.go -destination=mock/ocr_service_mock.go -package=mock
type Service interface {
	Scan(ctx context.Context, req ScanRequest) (ScanResponse, error)
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
}

type service struct {
	vision       VisionClient
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(vision VisionClient, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ocr.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ocr.service")
	}
	return &service{vision: vision, employeeRepo: employeeRepo, logger: l}
}

func (s *service) Scan(ctx context.Context, req ScanRequest) (ScanResponse, error) {
	fields, err := s.vision.Extract(ctx, req.ImageBase64, req.DocumentType)
	if err != nil {
		return ScanResponse{}, err
	}

	if nat, ok := fields["nationality"]; ok {
		fields["nationality"] = NormalizeNationality(nat)
	}

	s.logger.Info("document scanned",
		zap.String("document_type", req.DocumentType),
		zap.Int("fields", len(fields)))

	return ScanResponse{
		Success:      true,
		DocumentType: req.DocumentType,
		Extracted:    fields,
		Confidence:   "high",
	}, nil
}

// Import maps scanned documents onto an employee draft. The residence card
// wins; the passport only fills name fields the card did not provide, plus
// its own passport fields.
func (s *service) Import(ctx context.Context, req ImportRequest) (ImportResponse, error) {
	draft := map[string]string{}

	if zc := req.ZairyuCard; zc != nil {
		if zc.Name != "" {
			parts := strings.SplitN(strings.TrimSpace(zc.Name), " ", 2)
			draft["family_name"] = parts[0]
			if len(parts) > 1 {
				draft["given_name"] = parts[1]
			}
		}
		setIfPresent(draft, "family_name_kanji", zc.NameKanji)
		setIfPresent(draft, "nationality", NormalizeNationality(zc.Nationality))
		setIfPresent(draft, "date_of_birth", zc.DateOfBirth)
		setIfPresent(draft, "sex", zc.Sex)
		setIfPresent(draft, "current_visa_status", zc.StatusOfResidence)
		setIfPresent(draft, "current_period_of_stay", zc.PeriodOfStay)
		setIfPresent(draft, "current_expiration_date", zc.ExpirationDate)
		setIfPresent(draft, "residence_card_number", strings.ToUpper(zc.CardNumber))
		setIfPresent(draft, "address_japan", zc.Address)
	}

	if pp := req.Passport; pp != nil {
		if draft["family_name"] == "" {
			setIfPresent(draft, "family_name", pp.Surname)
		}
		if draft["given_name"] == "" {
			setIfPresent(draft, "given_name", pp.GivenNames)
		}
		setIfPresent(draft, "passport_number", pp.PassportNumber)
		setIfPresent(draft, "passport_expiration", pp.DateOfExpiry)
		setIfPresent(draft, "passport_issue_country", pp.IssuingCountry)
		setIfPresent(draft, "place_of_birth", pp.PlaceOfBirth)
		setIfPresent(draft, "home_town_city", pp.PlaceOfBirth)
	}

	for k, v := range draft {
		if v == "" {
			delete(draft, k)
		}
	}

	resp := ImportResponse{Extracted: draft}

	if cardNo := draft["residence_card_number"]; cardNo != "" {
		normalized, ok := validation.ResidenceCard(cardNo)
		if ok {
			cardNo = normalized
		}
		existing, err := s.employeeRepo.FindByCardNumber(ctx, cardNo)
		switch {
		case err == nil:
			resp.IsExisting = true
			resp.ExistingID = existing.ID.String()
		case errors.Is(err, gorm.ErrRecordNotFound):
			// new worker, nothing to report
		default:
			return ImportResponse{}, err
		}
	}

	return resp, nil
}

// Merge combines existing employee fields with OCR output. With
// onlyFillMissing set, stored values are never overwritten.
func Merge(existing, extracted map[string]string, onlyFillMissing bool) map[string]string {
	result := make(map[string]string, len(existing)+len(extracted))
	for k, v := range existing {
		result[k] = v
	}

	for k, v := range extracted {
		if v == "" {
			continue
		}
		if onlyFillMissing && result[k] != "" {
			continue
		}
		result[k] = v
	}

	return result
}

func NormalizeNationality(raw string) string {
	if ja, ok := nationalityJa[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return ja
	}
	return raw
}

func setIfPresent(m map[string]string, key, value string) {
	if strings.TrimSpace(value) != "" {
		m[key] = value
	}
}
