package services

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// EmployeeSvcFacade exposes employee CRUD and the salaries report to the
// handler layer.
type EmployeeSvcFacade interface {
	SalariesByDepartment(ctx context.Context) ([]domain.DeptSalarySummary, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) (int64, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}
