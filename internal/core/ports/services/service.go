package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Employee EmployeeSvcFacade
	Banking  BankingSvcFacade
	Trip     TripSvcFacade
}
