package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
)

type fakeEmployeeService struct {
	CreateFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn          func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn         func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetByCardNumberFn func(ctx context.Context, cardNo string) (employee.EmployeeResponse, error)
	UpdateFn          func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn          func(ctx context.Context, id string) error
	GetAlertsFn       func(ctx context.Context, withinDays int) (employee.VisaAlertListResponse, error)
	GetStatsFn        func(ctx context.Context) (employee.EmployeeStatsResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetByCardNumber(ctx context.Context, cardNo string) (employee.EmployeeResponse, error) {
	return f.GetByCardNumberFn(ctx, cardNo)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) GetAlerts(ctx context.Context, withinDays int) (employee.VisaAlertListResponse, error) {
	return f.GetAlertsFn(ctx, withinDays)
}
func (f *fakeEmployeeService) GetStats(ctx context.Context) (employee.EmployeeStatsResponse, error) {
	return f.GetStatsFn(ctx)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "GARCIA", req.FamilyName)
				return employee.EmployeeResponse{
					ID:           uuid.New().String(),
					EmployeeCode: "UNS-202601-0001",
					FamilyName:   req.FamilyName,
					GivenName:    req.GivenName,
					FullName:     req.FamilyName + " " + req.GivenName,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"family_name":"GARCIA","given_name":"MARIA","nationality":"フィリピン","visa_expire_date":"2027-01-31"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "UNS-202601-0001")
	})

	t.Run("missing family_name fails binding", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"given_name":"MARIA"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict from service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"family_name":"GARCIA","employee_code":"UNS-202601-0001"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	list := []employee.EmployeeResponse{
		{EmployeeCode: "UNS-202601-0002", FullName: "GARCIA MARIA", Nationality: "フィリピン", EmploymentStatus: "active"},
		{EmployeeCode: "UNS-202601-0001", FullName: "田中 太郎", Nationality: "ベトナム", EmploymentStatus: "inactive"},
		{EmployeeCode: "UNS-202601-0003", FullName: "NGUYEN VAN AN", Nationality: "ベトナム", EmploymentStatus: "active"},
	}
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return list, nil
		},
	}
	h := employee.NewHandler(svc)

	t.Run("sorted by code with pagination meta", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?page=1&page_size=2", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta *struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 2)
		assert.Equal(t, "UNS-202601-0001", envelope.Data[0].EmployeeCode)
		assert.Equal(t, int64(3), envelope.Meta.Total)
	})

	t.Run("status filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?status=inactive", nil)

		h.GetAll(c)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, "田中 太郎", envelope.Data[0].FullName)
	})

	t.Run("free text search", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?q=nguyen", nil)

		h.GetAll(c)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, "NGUYEN VAN AN", envelope.Data[0].FullName)
	})
}

func TestEmployeeHandler_GetAlerts(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAlertsFn: func(ctx context.Context, withinDays int) (employee.VisaAlertListResponse, error) {
			assert.Equal(t, 30, withinDays)
			return employee.VisaAlertListResponse{
				Total:    1,
				Critical: 1,
				Alerts: []employee.VisaAlertResponse{{
					EmployeeResponse: employee.EmployeeResponse{EmployeeCode: "UNS-202601-0001"},
					Urgency:          employee.UrgencyCritical,
				}},
			}, nil
		},
	}
	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/alerts?within_days=30", nil)

	h.GetAlerts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UNS-202601-0001")
	assert.Contains(t, w.Body.String(), `"urgency":"critical"`)
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/x", nil)

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
