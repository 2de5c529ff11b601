package mongodb

import (
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider constructs every repository against the shared
// database handle.
func NewRepositoryProvider(db *mongo.Database) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Employee: newEmployeeRepository(db),
		Banking:  newBankingRepository(db),
		Trip:     newTripRepository(db),
	}
}
