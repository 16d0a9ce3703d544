package employee

import "uns-visa/internal/validation"

type CreateEmployeeRequest struct {
	// EmployeeCode is optional; left empty a code is issued automatically.
	EmployeeCode     string `json:"employee_code"`
	FamilyName       string `json:"family_name" binding:"required"`
	GivenName        string `json:"given_name"`
	FamilyNameKana   string `json:"family_name_kana"`
	GivenNameKana    string `json:"given_name_kana"`
	Sex              string `json:"sex" binding:"omitempty,oneof=male female"`
	MaritalStatus    string `json:"marital_status"`
	Nationality      string `json:"nationality"`
	BirthDate        string `json:"birth_date"`
	PostalCode       string `json:"postal_code"`
	Address          string `json:"address"`
	Apartment        string `json:"apartment"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	VisaType         string `json:"visa_type"`
	PeriodOfStay     string `json:"period_of_stay"`
	VisaExpireDate   string `json:"visa_expire_date"`
	ResidenceCardNo  string `json:"residence_card_no"`
	PassportNumber   string `json:"passport_number"`
	PassportExpireAt string `json:"passport_expire_at"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=active inactive"`
	Education        string `json:"education"`
	Notes            string `json:"notes"`
}

type UpdateEmployeeRequest struct {
	FamilyName       string `json:"family_name" binding:"required"`
	GivenName        string `json:"given_name"`
	FamilyNameKana   string `json:"family_name_kana"`
	GivenNameKana    string `json:"given_name_kana"`
	Sex              string `json:"sex" binding:"omitempty,oneof=male female"`
	MaritalStatus    string `json:"marital_status"`
	Nationality      string `json:"nationality"`
	BirthDate        string `json:"birth_date"`
	PostalCode       string `json:"postal_code"`
	Address          string `json:"address"`
	Apartment        string `json:"apartment"`
	Phone            string `json:"phone"`
	Email            string `json:"email" binding:"omitempty,email"`
	VisaType         string `json:"visa_type"`
	PeriodOfStay     string `json:"period_of_stay"`
	VisaExpireDate   string `json:"visa_expire_date"`
	ResidenceCardNo  string `json:"residence_card_no"`
	PassportNumber   string `json:"passport_number"`
	PassportExpireAt string `json:"passport_expire_at"`
	HireDate         string `json:"hire_date"`
	RetireDate       string `json:"retire_date"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=active inactive"`
	Education        string `json:"education"`
	Notes            string `json:"notes"`
}

type EmployeeResponse struct {
	ID               string                   `json:"id"`
	EmployeeCode     string                   `json:"employee_code"`
	FamilyName       string                   `json:"family_name"`
	GivenName        string                   `json:"given_name"`
	FullName         string                   `json:"full_name"`
	Sex              string                   `json:"sex,omitempty"`
	MaritalStatus    string                   `json:"marital_status,omitempty"`
	Nationality      string                   `json:"nationality,omitempty"`
	BirthDate        string                   `json:"birth_date,omitempty"`
	PostalCode       string                   `json:"postal_code,omitempty"`
	Address          string                   `json:"address,omitempty"`
	Apartment        string                   `json:"apartment,omitempty"`
	Phone            string                   `json:"phone,omitempty"`
	Email            string                   `json:"email,omitempty"`
	VisaType         string                   `json:"visa_type,omitempty"`
	PeriodOfStay     string                   `json:"period_of_stay,omitempty"`
	VisaExpireDate   string                   `json:"visa_expire_date,omitempty"`
	VisaDeadline     *validation.DeadlineInfo `json:"visa_deadline,omitempty"`
	ResidenceCardNo  string                   `json:"residence_card_no,omitempty"`
	PassportNumber   string                   `json:"passport_number,omitempty"`
	PassportExpireAt string                   `json:"passport_expire_at,omitempty"`
	HireDate         string                   `json:"hire_date,omitempty"`
	RetireDate       string                   `json:"retire_date,omitempty"`
	EmploymentStatus string                   `json:"employment_status"`
	Education        string                   `json:"education,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
}

// Visa alert urgency tiers. Coarser than the deadline status: anything due
// within 30 days is critical, within 60 warning, the rest of the window info.
const (
	UrgencyCritical = "critical"
	UrgencyWarning  = "warning"
	UrgencyInfo     = "info"
)

// VisaAlertResponse is one expiring-visa alert.
type VisaAlertResponse struct {
	EmployeeResponse
	Urgency string `json:"urgency"`
}

// VisaAlertListResponse is the alert feed, soonest expiry first.
type VisaAlertListResponse struct {
	Total    int                 `json:"total"`
	Critical int                 `json:"critical"`
	Alerts   []VisaAlertResponse `json:"alerts"`
}

// EmployeeStatsResponse aggregates the workforce for the dashboard.
type EmployeeStatsResponse struct {
	Total         int64              `json:"total"`
	Active        int64              `json:"active"`
	Inactive      int64              `json:"inactive"`
	VisaExpired   int64              `json:"visa_expired"`
	VisaCritical  int64              `json:"visa_critical"`
	VisaWarning   int64              `json:"visa_warning"`
	ByNationality []NationalityCount `json:"by_nationality"`
}

type NationalityCount struct {
	Nationality string `json:"nationality"`
	Count       int64  `json:"count"`
}
