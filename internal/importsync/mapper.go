package importsync

import (
	"errors"
	"strings"
	"time"

	"uns-visa/internal/validation"
)

// Column headers of the worker master sheet. The export tool emits the
// half-width forms; header matching is exact.
const (
	ColEmployeeCode = "社員№"
	ColName         = "氏名"
	ColSex          = "性別"
	ColNationality  = "国籍"
	ColBirthDate    = "生年月日"
	ColVisaExpire   = "ビザ期限"
	ColVisaType     = "ビザ種類"
	ColPostalCode   = "〒"
	ColAddress      = "住所"
	ColApartment    = "ｱﾊﾟｰﾄ"
	ColHireDate     = "入社日"
	ColRetireDate   = "退社日"
	ColCurrent      = "現在"
)

var (
	ErrMissingEmployeeCode = errors.New("importsync: row has no employee code")
	ErrMissingCompanyName  = errors.New("importsync: factory has no company name")
)

// Row is one spreadsheet row keyed by header. A header absent from the map
// means the sheet does not carry that column at all, which is distinct from
// a present-but-empty cell.
type Row map[string]string

// EmployeeCandidate is a worker record as read from a source file, before
// reconciliation. Nil pointers mean the sheet did not carry the column at
// all; on update those fields keep their stored value. A pointer to the
// empty string or the zero time marks a cell that was present but empty, and
// those do overwrite: the sheet is the authority on every column it carries.
type EmployeeCandidate struct {
	EmployeeCode     string
	FamilyName       *string
	GivenName        *string
	Sex              *string
	Nationality      *string
	BirthDate        *time.Time
	VisaExpireDate   *time.Time
	VisaType         *string
	PostalCode       *string
	Address          *string
	Apartment        *string
	HireDate         *time.Time
	RetireDate       *time.Time
	EmploymentStatus string
}

// CompanyCandidate is a client company as read from a factory file.
type CompanyCandidate struct {
	Name                      string
	BranchName                *string
	CorporationNumber         *string
	EmploymentInsuranceNumber *string
	Address                   *string
	Prefecture                string
	Phone                     *string
	ResponsiblePerson         *string
	BusinessType              string
	TraineeCount              int
	Plants                    []PlantCandidate
}

// PlantCandidate is a production site attached to a client company.
type PlantCandidate struct {
	Name    string
	Address string
	Phone   string
}

func strField(row Row, col string) *string {
	raw, exists := row[col]
	if !exists {
		return nil
	}
	s, _ := ToString(raw)
	return &s
}

func dateField(row Row, col string) *time.Time {
	raw, exists := row[col]
	if !exists {
		return nil
	}
	if IsAbsent(raw) {
		// present but empty: the zero time tells reconciliation to clear
		// the stored date
		return &time.Time{}
	}
	t, ok := ToDate(raw)
	if !ok {
		// an unparseable non-empty date is treated as absent so a typo in
		// one cell cannot erase a stored value
		return nil
	}
	return &t
}

// MapEmployeeRow converts one sheet row into a candidate. The employee code
// is the reconciliation key; a row without one is rejected. No field-format
// validation happens here: the batch path is best-effort by design of the
// source files, which predate the validators.
func MapEmployeeRow(row Row) (EmployeeCandidate, error) {
	code, ok := ToString(row[ColEmployeeCode])
	if !ok {
		return EmployeeCandidate{}, ErrMissingEmployeeCode
	}

	c := EmployeeCandidate{
		EmployeeCode:     code,
		Nationality:      strField(row, ColNationality),
		BirthDate:        dateField(row, ColBirthDate),
		VisaExpireDate:   dateField(row, ColVisaExpire),
		VisaType:         strField(row, ColVisaType),
		Address:          strField(row, ColAddress),
		Apartment:        strField(row, ColApartment),
		HireDate:         dateField(row, ColHireDate),
		RetireDate:       dateField(row, ColRetireDate),
		EmploymentStatus: NormalizeEmploymentStatus(row[ColCurrent]),
	}

	if name := strField(row, ColName); name != nil {
		family, given := SplitName(*name)
		c.FamilyName = &family
		c.GivenName = &given
	}
	if raw, exists := row[ColSex]; exists {
		sex := NormalizeSex(raw)
		c.Sex = &sex
	}
	if p := strField(row, ColPostalCode); p != nil {
		clean := validation.StripSeparators(*p)
		c.PostalCode = &clean
	}
	return c, nil
}

// FactoryDoc mirrors the JSON layout of one factory file.
type FactoryDoc struct {
	ClientCompany FactoryCompany `json:"client_company"`
	Plant         *FactoryPlant  `json:"plant"`
}

type FactoryCompany struct {
	Name                      string         `json:"name"`
	CorporationNumber         string         `json:"corporation_number"`
	EmploymentInsuranceNumber string         `json:"employment_insurance_number"`
	Address                   string         `json:"address"`
	Phone                     string         `json:"phone"`
	BusinessType              string         `json:"business_type"`
	ResponsiblePerson         *FactoryPerson `json:"responsible_person"`
}

type FactoryPerson struct {
	Name string `json:"name"`
}

type FactoryPlant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func optString(raw string) *string {
	s, ok := ToString(raw)
	if !ok {
		return nil
	}
	return &s
}

// MapFactory converts a factory document into a company candidate. The
// staffing agency's client base is manufacturing, so an unstated business
// type defaults to 製造業. Workers report to the plant, so the plant's name
// becomes the branch name and its address and phone take precedence over
// the head office's; the prefecture is parsed from whichever address won.
func MapFactory(doc FactoryDoc) (CompanyCandidate, error) {
	name, ok := ToString(doc.ClientCompany.Name)
	if !ok {
		return CompanyCandidate{}, ErrMissingCompanyName
	}

	c := CompanyCandidate{
		Name:                      name,
		CorporationNumber:         optString(doc.ClientCompany.CorporationNumber),
		EmploymentInsuranceNumber: optString(doc.ClientCompany.EmploymentInsuranceNumber),
		Address:                   optString(doc.ClientCompany.Address),
		Phone:                     optString(doc.ClientCompany.Phone),
		BusinessType:              "製造業",
	}
	if bt, ok := ToString(doc.ClientCompany.BusinessType); ok {
		c.BusinessType = bt
	}
	if doc.ClientCompany.ResponsiblePerson != nil {
		c.ResponsiblePerson = optString(doc.ClientCompany.ResponsiblePerson.Name)
	}
	if doc.Plant != nil {
		if pn, ok := ToString(doc.Plant.Name); ok {
			c.BranchName = &pn
			c.Plants = append(c.Plants, PlantCandidate{
				Name:    pn,
				Address: strings.TrimSpace(doc.Plant.Address),
				Phone:   strings.TrimSpace(doc.Plant.Phone),
			})
		}
		if pa, ok := ToString(doc.Plant.Address); ok {
			c.Address = &pa
		}
		if pp, ok := ToString(doc.Plant.Phone); ok {
			c.Phone = &pp
		}
	}
	if c.Address != nil {
		c.Prefecture = validation.ParsePrefecture(*c.Address)
	}
	return c, nil
}
