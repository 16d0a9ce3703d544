package dispatch

// AssignRequest places a worker at a client company. Dates use YYYY-MM-DD.
type AssignRequest struct {
	EmployeeID      string  `json:"employee_id" binding:"required,uuid"`
	ClientCompanyID string  `json:"client_company_id" binding:"required,uuid"`
	PlantID         *string `json:"plant_id" binding:"omitempty,uuid"`
	StartDate       string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type EndAssignmentRequest struct {
	EndDate string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type AssignmentResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employee_id"`
	ClientCompanyID   string `json:"client_company_id"`
	ClientCompanyName string `json:"client_company_name,omitempty"`
	PlantID           string `json:"plant_id,omitempty"`
	Status            string `json:"status"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
}

func toAssignmentResponse(a *Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                a.ID.String(),
		EmployeeID:        a.EmployeeID.String(),
		ClientCompanyID:   a.ClientCompanyID.String(),
		ClientCompanyName: a.ClientCompany.Name,
		Status:            a.Status,
	}
	if a.PlantID != nil {
		resp.PlantID = a.PlantID.String()
	}
	if a.StartDate != nil {
		resp.StartDate = a.StartDate.Format("2006-01-02")
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.Format("2006-01-02")
	}
	return resp
}
