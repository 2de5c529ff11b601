package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
	"github.com/SscSPs/mongo_analytics_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) SalariesByDepartment(ctx context.Context) ([]domain.DeptSalarySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeptSalarySummary), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) (int64, error) {
	args := m.Called(ctx, employeeID, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Test Suite ---
type EmployeeHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEmployeeService *MockEmployeeService
	mockBankingService  *MockBankingService
	mockTripService     *MockTripService
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	suite.mockEmployeeService = new(MockEmployeeService)
	suite.mockBankingService = new(MockBankingService)
	suite.mockTripService = new(MockTripService)
	suite.router = newTestRouter(suite.mockEmployeeService, suite.mockBankingService, suite.mockTripService)
}

func (suite *EmployeeHandlerTestSuite) serveJSON(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EmployeeHandlerTestSuite) TestListEmployees_Success() {
	expected := []domain.Employee{
		{EmployeeID: "65f1a2b3c4d5e6f7a8b9c0d1", FirstName: "Grace", LastName: "Hopper", CreatedAt: time.Now().UTC()},
		{EmployeeID: "65f1a2b3c4d5e6f7a8b9c0d2", FirstName: "Alan", LastName: "Turing", CreatedAt: time.Now().UTC()},
	}

	suite.mockEmployeeService.On("ListEmployees", mock.Anything).Return(expected, nil).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(2, resp.Count)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_Success() {
	reqBody := dto.CreateEmployeeRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Department: "Engineering",
		Salary:     120000,
	}
	created := &domain.Employee{
		EmployeeID: "65f1a2b3c4d5e6f7a8b9c0d1",
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Department: "Engineering",
		Salary:     120000,
		CreatedAt:  time.Now().UTC(),
	}

	suite.mockEmployeeService.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(e domain.Employee) bool {
		return e.FirstName == "Grace" && e.Salary == 120000
	})).Return(created, nil).Once()

	w := suite.serveJSON(http.MethodPost, "/api/v1/", reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EmployeeCreatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("65f1a2b3c4d5e6f7a8b9c0d1", resp.Data.ID)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_MissingRequiredFields() {
	w := suite.serveJSON(http.MethodPost, "/api/v1/", map[string]interface{}{"email": "no-names@example.com"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "CreateEmployee")
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_Success() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"
	employee := &domain.Employee{EmployeeID: id, FirstName: "Grace", LastName: "Hopper", CreatedAt: time.Now().UTC()}

	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, id).Return(employee, nil).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/"+id, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(id, resp.ID)
	suite.Equal("Grace", resp.FirstName)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFound() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"

	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Employee not found", resp.Message)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_InvalidID() {
	id := "not-a-hex-id"

	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, id).Return(nil, apperrors.ErrValidation).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/"+id, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee_Success() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"
	salary := 95000.0

	suite.mockEmployeeService.On("UpdateEmployee", mock.Anything, id, mock.MatchedBy(func(u domain.EmployeeUpdate) bool {
		return u.Salary != nil && *u.Salary == salary
	})).Return(int64(1), nil).Once()

	w := suite.serveJSON(http.MethodPut, "/api/v1/"+id, map[string]interface{}{"salary": salary})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmployeeUpdatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(1), resp.ModifiedCount)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee_NotFound() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"

	suite.mockEmployeeService.On("UpdateEmployee", mock.Anything, id, mock.AnythingOfType("domain.EmployeeUpdate")).Return(int64(0), apperrors.ErrNotFound).Once()

	w := suite.serveJSON(http.MethodPut, "/api/v1/"+id, map[string]interface{}{"position": "Manager"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestUpdateEmployee_EmptyBody() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"

	suite.mockEmployeeService.On("UpdateEmployee", mock.Anything, id, mock.MatchedBy(func(u domain.EmployeeUpdate) bool {
		return u.IsEmpty()
	})).Return(int64(0), apperrors.ErrValidation).Once()

	w := suite.serveJSON(http.MethodPut, "/api/v1/"+id, map[string]interface{}{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_Success() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"

	suite.mockEmployeeService.On("DeleteEmployee", mock.Anything, id).Return(nil).Once()

	w := suite.serveJSON(http.MethodDelete, "/api/v1/"+id, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmployeeDeletedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(1), resp.DeletedCount)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_NotFound() {
	id := "65f1a2b3c4d5e6f7a8b9c0d1"

	suite.mockEmployeeService.On("DeleteEmployee", mock.Anything, id).Return(apperrors.ErrNotFound).Once()

	w := suite.serveJSON(http.MethodDelete, "/api/v1/"+id, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestSalariesByDept_Success() {
	expected := []domain.DeptSalarySummary{
		{
			Department:    "Engineering",
			TotalSalaries: decimal.NewFromInt(450000),
			AverageSalary: decimal.NewFromInt(90000),
			EmployeeCount: 5,
			MinSalary:     decimal.NewFromInt(60000),
			MaxSalary:     decimal.NewFromInt(120000),
		},
	}

	suite.mockEmployeeService.On("SalariesByDepartment", mock.Anything).Return(expected, nil).Once()

	w := suite.serveJSON(http.MethodGet, "/api/v1/employees/salaries_by_dept", nil)

	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.DeptSalarySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.Equal("Engineering", rows[0].Department)
	suite.Equal(int64(5), rows[0].EmployeeCount)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestHealthRoute() {
	w := suite.serveJSON(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
