package clientcompany

type CreateCompanyRequest struct {
	Name                      string         `json:"name" binding:"required"`
	BranchName                string         `json:"branch_name"`
	CorporationNumber         string         `json:"corporation_number"`
	EmploymentInsuranceNumber string         `json:"employment_insurance_number"`
	PostalCode                string         `json:"postal_code"`
	Address                   string         `json:"address"`
	Phone                     string         `json:"phone"`
	Fax                       string         `json:"fax"`
	ResponsiblePerson         string         `json:"responsible_person"`
	BusinessType              string         `json:"business_type"`
	Capital                   *int64         `json:"capital"`
	AnnualSales               *int64         `json:"annual_sales"`
	TotalEmployees            *int           `json:"total_employees"`
	ForeignEmployees          *int           `json:"foreign_employees"`
	TraineeCount              int            `json:"trainee_count"`
	ContractStatus            string         `json:"contract_status" binding:"omitempty,oneof=active suspended terminated"`
	ContractStartDate         string         `json:"contract_start_date"`
	ContractEndDate           string         `json:"contract_end_date"`
	Notes                     string         `json:"notes"`
	Plants                    []PlantRequest `json:"plants"`
}

type PlantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCompanyRequest is a partial update: nil fields keep their stored
// value, present fields overwrite it even when empty.
type UpdateCompanyRequest struct {
	Name                      *string `json:"name"`
	BranchName                *string `json:"branch_name"`
	CorporationNumber         *string `json:"corporation_number"`
	EmploymentInsuranceNumber *string `json:"employment_insurance_number"`
	PostalCode                *string `json:"postal_code"`
	Address                   *string `json:"address"`
	Phone                     *string `json:"phone"`
	Fax                       *string `json:"fax"`
	ResponsiblePerson         *string `json:"responsible_person"`
	BusinessType              *string `json:"business_type"`
	Capital                   *int64  `json:"capital"`
	AnnualSales               *int64  `json:"annual_sales"`
	TotalEmployees            *int    `json:"total_employees"`
	ForeignEmployees          *int    `json:"foreign_employees"`
	TraineeCount              *int    `json:"trainee_count"`
	ContractStatus            *string `json:"contract_status" binding:"omitempty,oneof=active suspended terminated"`
	ContractStartDate         *string `json:"contract_start_date"`
	ContractEndDate           *string `json:"contract_end_date"`
	Notes                     *string `json:"notes"`
	IsActive                  *bool   `json:"is_active"`
}

type CompanyResponse struct {
	ID                        string          `json:"id"`
	Name                      string          `json:"name"`
	BranchName                string          `json:"branch_name,omitempty"`
	CorporationNumber         string          `json:"corporation_number,omitempty"`
	EmploymentInsuranceNumber string          `json:"employment_insurance_number,omitempty"`
	PostalCode                string          `json:"postal_code,omitempty"`
	Address                   string          `json:"address,omitempty"`
	Prefecture                string          `json:"prefecture,omitempty"`
	Phone                     string          `json:"phone,omitempty"`
	Fax                       string          `json:"fax,omitempty"`
	ResponsiblePerson         string          `json:"responsible_person,omitempty"`
	BusinessType              string          `json:"business_type,omitempty"`
	Capital                   *int64          `json:"capital,omitempty"`
	AnnualSales               *int64          `json:"annual_sales,omitempty"`
	TotalEmployees            *int            `json:"total_employees,omitempty"`
	ForeignEmployees          *int            `json:"foreign_employees,omitempty"`
	TraineeCount              int             `json:"trainee_count"`
	ContractStatus            string          `json:"contract_status,omitempty"`
	ContractStartDate         string          `json:"contract_start_date,omitempty"`
	ContractEndDate           string          `json:"contract_end_date,omitempty"`
	Notes                     string          `json:"notes,omitempty"`
	IsActive                  bool            `json:"is_active"`
	Plants                    []PlantResponse `json:"plants,omitempty"`
}

type PlantResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// CompanyStatsResponse aggregates the client base for the dashboard.
type CompanyStatsResponse struct {
	Total          int64               `json:"total"`
	Active         int64               `json:"active"`
	ByPrefecture   []PrefectureCount   `json:"by_prefecture"`
	ByBusinessType []BusinessTypeCount `json:"by_business_type"`
}

type PrefectureCount struct {
	Prefecture string `json:"prefecture"`
	Count      int64  `json:"count"`
}

type BusinessTypeCount struct {
	BusinessType string `json:"business_type"`
	Count        int64  `json:"count"`
}
