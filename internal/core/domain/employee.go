package domain

import "time"

// Employee represents an employee record within the application core.
type Employee struct {
	EmployeeID string
	FirstName  string
	LastName   string
	Email      string
	Position   string
	Department string
	Salary     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EmployeeUpdate carries the optional fields of a partial employee update.
// Nil fields are left untouched by the store.
type EmployeeUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Position   *string
	Department *string
	Salary     *float64
}

// IsEmpty reports whether the update carries no fields at all.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Position == nil && u.Department == nil && u.Salary == nil
}
