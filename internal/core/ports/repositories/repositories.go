package repositories

// RepositoryProvider bundles every repository the service layer needs,
// constructed once at startup and injected explicitly.
type RepositoryProvider struct {
	Employee EmployeeRepository
	Banking  BankingRepository
	Trip     TripRepository
}
