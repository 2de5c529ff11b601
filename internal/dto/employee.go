package dto

import (
	"time"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data for creating an employee. Optional
// fields default server-side to their zero values.
type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary" binding:"omitempty,gte=0"`
}

// ToDomain converts the request into a domain employee.
func (r CreateEmployeeRequest) ToDomain() domain.Employee {
	return domain.Employee{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Position:   r.Position,
		Department: r.Department,
		Salary:     r.Salary,
	}
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary" binding:"omitempty,gte=0"`
}

// ToDomain converts the request into a domain partial update.
func (r UpdateEmployeeRequest) ToDomain() domain.EmployeeUpdate {
	return domain.EmployeeUpdate{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Position:   r.Position,
		Department: r.Department,
		Salary:     r.Salary,
	}
}

// EmployeeResponse is the JSON shape of a single employee record.
type EmployeeResponse struct {
	ID         string     `json:"_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Salary     float64    `json:"salary"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ToEmployeeResponse converts a domain employee to its response DTO.
func ToEmployeeResponse(employee *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         employee.EmployeeID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Position:   employee.Position,
		Department: employee.Department,
		Salary:     employee.Salary,
		CreatedAt:  employee.CreatedAt,
	}
	if !employee.UpdatedAt.IsZero() {
		updatedAt := employee.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ToEmployeeResponses converts a slice of domain employees.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

// EmployeeCreatedResponse is the envelope returned on employee creation.
type EmployeeCreatedResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    EmployeeResponse `json:"data"`
}

// EmployeeUpdatedResponse is the envelope returned on employee update.
type EmployeeUpdatedResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// EmployeeDeletedResponse is the envelope returned on employee deletion.
type EmployeeDeletedResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// DeptSalarySummaryResponse is one row of the salaries-by-department report.
// The grouped department name stays under _id, matching the report's
// documented shape.
type DeptSalarySummaryResponse struct {
	Department    string          `json:"_id"`
	TotalSalaries decimal.Decimal `json:"total_salaries"`
	AvgSalary     decimal.Decimal `json:"avg_salary"`
	EmployeeCount int64           `json:"employees_count"`
	MinSalary     decimal.Decimal `json:"min_salary"`
	MaxSalary     decimal.Decimal `json:"max_salary"`
}

// ToDeptSalarySummaryResponses converts the domain report rows.
func ToDeptSalarySummaryResponses(rows []domain.DeptSalarySummary) []DeptSalarySummaryResponse {
	responses := make([]DeptSalarySummaryResponse, len(rows))
	for i, row := range rows {
		responses[i] = DeptSalarySummaryResponse{
			Department:    row.Department,
			TotalSalaries: row.TotalSalaries,
			AvgSalary:     row.AverageSalary,
			EmployeeCount: row.EmployeeCount,
			MinSalary:     row.MinSalary,
			MaxSalary:     row.MaxSalary,
		}
	}
	return responses
}
