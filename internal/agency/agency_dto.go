package agency

// SaveAgencyRequest carries the dispatching business's own profile. The
// fields mirror the employer block of the immigration forms.
type SaveAgencyRequest struct {
	Name               string `json:"name" binding:"required,max=255"`
	NameKana           string `json:"name_kana" binding:"omitempty,max=255"`
	CorporationNumber  string `json:"corporation_number" binding:"omitempty,len=13,numeric"`
	DispatchLicenseNo  string `json:"dispatch_license_no" binding:"omitempty,max=50"`
	PostalCode         string `json:"postal_code" binding:"omitempty,max=8"`
	Address            string `json:"address" binding:"omitempty,max=255"`
	Phone              string `json:"phone" binding:"omitempty,max=20"`
	RepresentativeName string `json:"representative_name" binding:"omitempty,max=255"`
	RepresentativeRole string `json:"representative_role" binding:"omitempty,max=100"`
}

type AgencyResponse struct {
	Name               string `json:"name"`
	NameKana           string `json:"name_kana"`
	CorporationNumber  string `json:"corporation_number"`
	DispatchLicenseNo  string `json:"dispatch_license_no"`
	PostalCode         string `json:"postal_code"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	RepresentativeName string `json:"representative_name"`
	RepresentativeRole string `json:"representative_role"`
}

func toAgencyResponse(a *Agency) AgencyResponse {
	return AgencyResponse{
		Name:               a.Name,
		NameKana:           a.NameKana,
		CorporationNumber:  a.CorporationNumber,
		DispatchLicenseNo:  a.DispatchLicenseNo,
		PostalCode:         a.PostalCode,
		Address:            a.Address,
		Phone:              a.Phone,
		RepresentativeName: a.RepresentativeName,
		RepresentativeRole: a.RepresentativeRole,
	}
}
