package services

import (
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Employee: NewEmployeeService(repos.Employee),
		Banking:  NewBankingService(repos.Banking),
		Trip:     NewTripService(repos.Trip),
	}
}
