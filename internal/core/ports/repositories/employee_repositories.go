package repositories

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records and
// the salaries-by-department report.
type EmployeeRepository interface {
	// SalariesByDepartment aggregates salary sum/avg/min/max/count per
	// department, sorted by total salaries descending.
	SalariesByDepartment(ctx context.Context) ([]domain.DeptSalarySummary, error)

	// FindEmployees returns every employee record.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeeByID returns the employee with the given id, or
	// apperrors.ErrNotFound.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// SaveEmployee inserts a new employee and returns it with the
	// store-assigned id populated.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee merges the supplied partial fields into the employee and
	// stamps updated_at. Returns the modified-document count, or
	// apperrors.ErrNotFound when no document matches.
	UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) (int64, error)

	// DeleteEmployee removes the employee, returning apperrors.ErrNotFound
	// when no document matches.
	DeleteEmployee(ctx context.Context, employeeID string) error
}
