package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	"github.com/SscSPs/mongo_analytics_app/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// employeeRepository implements the EmployeeRepository interface.
type employeeRepository struct {
	BaseRepository
}

// newEmployeeRepository creates a new employee repository.
func newEmployeeRepository(db *mongo.Database) portsrepo.EmployeeRepository {
	return &employeeRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// SalariesByDepartment aggregates salary statistics per department.
func (r *employeeRepository) SalariesByDepartment(ctx context.Context) ([]domain.DeptSalarySummary, error) {
	var rows []struct {
		Department    string  `bson:"_id"`
		TotalSalaries float64 `bson:"total_salaries"`
		AvgSalary     float64 `bson:"avg_salary"`
		EmployeeCount int64   `bson:"employees_count"`
		MinSalary     float64 `bson:"min_salary"`
		MaxSalary     float64 `bson:"max_salary"`
	}
	if err := r.aggregate(ctx, employeesCollection, salariesByDeptPipeline(), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.DeptSalarySummary, len(rows))
	for i, row := range rows {
		result[i] = domain.DeptSalarySummary{
			Department:    row.Department,
			TotalSalaries: decimal.NewFromFloat(row.TotalSalaries),
			AverageSalary: decimal.NewFromFloat(row.AvgSalary),
			EmployeeCount: row.EmployeeCount,
			MinSalary:     decimal.NewFromFloat(row.MinSalary),
			MaxSalary:     decimal.NewFromFloat(row.MaxSalary),
		}
	}
	return result, nil
}

// FindEmployees returns every employee document.
func (r *employeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	cur, err := r.DB.Collection(employeesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding employees: %w", err)
	}
	defer cur.Close(ctx)

	var docs []models.Employee
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding employees: %w", err)
	}

	result := make([]domain.Employee, len(docs))
	for i, doc := range docs {
		result[i] = toDomainEmployee(doc)
	}
	return result, nil
}

// FindEmployeeByID returns a single employee by its hex object id.
func (r *employeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid employee id %q", apperrors.ErrValidation, employeeID)
	}

	var doc models.Employee
	err = r.DB.Collection(employeesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding employee %s: %w", employeeID, err)
	}

	employee := toDomainEmployee(doc)
	return &employee, nil
}

// SaveEmployee inserts a new employee document.
func (r *employeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	doc := models.Employee{
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Position:   employee.Position,
		Department: employee.Department,
		Salary:     employee.Salary,
		CreatedAt:  employee.CreatedAt,
	}

	res, err := r.DB.Collection(employeesCollection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("error inserting employee: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	employee.EmployeeID = oid.Hex()
	return &employee, nil
}

// UpdateEmployee merges the non-nil update fields into the employee document
// and stamps updated_at.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, employeeID string, update domain.EmployeeUpdate) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid employee id %q", apperrors.ErrValidation, employeeID)
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}

	res, err := r.DB.Collection(employeesCollection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("error updating employee %s: %w", employeeID, err)
	}
	if res.MatchedCount == 0 {
		return 0, apperrors.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// DeleteEmployee removes an employee document.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return fmt.Errorf("%w: invalid employee id %q", apperrors.ErrValidation, employeeID)
	}

	res, err := r.DB.Collection(employeesCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting employee %s: %w", employeeID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func toDomainEmployee(doc models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: doc.ID.Hex(),
		FirstName:  doc.FirstName,
		LastName:   doc.LastName,
		Email:      doc.Email,
		Position:   doc.Position,
		Department: doc.Department,
		Salary:     doc.Salary,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
