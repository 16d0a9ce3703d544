package export

import "time"

// Application form kinds accepted by the generator.
const (
	FormRenewal = "renewal" // 在留期間更新許可申請書
	FormCOE     = "coe"     // 在留資格認定証明書交付申請書
	FormChange  = "change"  // 在留資格変更許可申請書
)

// FormData is the flattened field set the workbook builder consumes: the
// applicant, the employing agency, and the client site the worker is
// dispatched to.
type FormData struct {
	FormType         string
	SubmissionOffice string

	// Applicant
	Nationality      string
	DateOfBirth      *time.Time
	FamilyName       string
	GivenName        string
	NameKana         string
	Sex              string
	HomeTownCity     string
	AddressJapan     string
	Phone            string
	PassportNumber   string
	PassportExpireAt *time.Time
	VisaStatus       string
	PeriodOfStay     string
	VisaExpireDate   *time.Time
	ResidenceCardNo  string
	Education        string

	// Employer (the agency)
	EmployerName        string
	CorporationNumber   string
	DispatchLicenseNo   string
	EmployerAddress     string
	EmployerPhone       string
	RepresentativeName  string
	RepresentativeRole  string

	// Work location (active dispatch destination)
	WorkLocationName    string
	WorkLocationAddress string
	WorkLocationPhone   string
}

func (d FormData) ApplicantName() string {
	if d.GivenName == "" {
		return d.FamilyName
	}
	return d.FamilyName + " " + d.GivenName
}
