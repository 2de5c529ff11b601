package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
)

// employeeService implements the EmployeeSvcFacade interface.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: repo,
	}
}

// Ensure employeeService implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// SalariesByDepartment generates the salaries-by-department report.
func (s *employeeService) SalariesByDepartment(ctx context.Context) ([]domain.DeptSalarySummary, error) {
	rows, err := s.employeeRepo.SalariesByDepartment(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve salaries by department")
		return nil, fmt.Errorf("failed to retrieve salaries by department: %w", err)
	}

	s.LogInfo(ctx, "Salaries by department report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ListEmployees returns all employee records.
func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeByID returns a single employee record.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

// CreateEmployee stamps creation time and persists a new employee.
func (s *employeeService) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	employee.CreatedAt = time.Now().UTC()

	created, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to create employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", created.EmployeeID))
	return created, nil
}

// UpdateEmployee merges the supplied partial fields into an employee record.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) (int64, error) {
	if update.IsEmpty() {
		return 0, fmt.Errorf("%w: update carries no fields", apperrors.ErrValidation)
	}

	modified, err := s.employeeRepo.UpdateEmployee(ctx, employeeID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return 0, err
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID), slog.Int64("modified_count", modified))
	return modified, nil
}

// DeleteEmployee removes an employee record.
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}
