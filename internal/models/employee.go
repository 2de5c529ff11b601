package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee represents a document in the employees_salaries collection.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FirstName  string             `bson:"first_name"`
	LastName   string             `bson:"last_name"`
	Email      string             `bson:"email"`
	Position   string             `bson:"position"`
	Department string             `bson:"department"`
	Salary     float64            `bson:"salary"`
	DeptName   string             `bson:"dept_name,omitempty"` // grouping key for the salaries report, present on seeded documents
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at,omitempty"`
}
