package domain

import "github.com/shopspring/decimal"

// DefaultAccountLimitThreshold is the credit-limit floor applied to the
// active clients report when the caller does not supply one.
const DefaultAccountLimitThreshold = 10000

// DeptSalarySummary is one row of the salaries-by-department report.
type DeptSalarySummary struct {
	Department    string
	TotalSalaries decimal.Decimal
	AverageSalary decimal.Decimal
	EmployeeCount int64
	MinSalary     decimal.Decimal
	MaxSalary     decimal.Decimal
}

// ClientFilter holds the normalized criteria for the active clients report.
// A nil Active means no constraint on the customer's active flag.
type ClientFilter struct {
	Active          *bool
	MinAccountLimit int64
}

// ActiveClient is one row of the active clients report: a customer joined
// with one of their qualifying accounts.
type ActiveClient struct {
	Name         string
	Address      string
	Email        string
	AccountID    int64
	AccountLimit int64
}

// ProductClients is one row of the clients-per-product report.
type ProductClients struct {
	Product      string
	TotalClients int64
}

// AccountVolume is one row of the top accounts by transaction volume report.
type AccountVolume struct {
	AccountID int64
	Total     decimal.Decimal
}

// AccountTypeVolume is one row of the top accounts by volume per transaction
// type report, with the owning customer's name attached.
type AccountTypeVolume struct {
	AccountID       int64
	CustomerName    string
	Total           decimal.Decimal
	TransactionCode string
}

// RepairResult reports the outcome of the transaction numeric repair.
type RepairResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
