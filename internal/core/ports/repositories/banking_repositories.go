package repositories

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// BankingRepository defines the customer/account/transaction report queries.
type BankingRepository interface {
	// ActiveClients joins customers to their accounts and filters by the
	// normalized criteria.
	ActiveClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ActiveClient, error)

	// ClientsByProduct counts distinct customers per account product.
	ClientsByProduct(ctx context.Context) ([]domain.ProductClients, error)

	// TopAccountsByVolume returns the n accounts with the highest summed
	// transaction totals, descending.
	TopAccountsByVolume(ctx context.Context, n int) ([]domain.AccountVolume, error)

	// TopAccountsByVolumePerType is TopAccountsByVolume grouped by
	// (account, transaction code), with the owning customer's name attached.
	TopAccountsByVolumePerType(ctx context.Context, n int) ([]domain.AccountTypeVolume, error)

	// RepairTransactionAmounts rewrites every transaction entry's price and
	// total to numeric type and reports how many documents were touched.
	RepairTransactionAmounts(ctx context.Context) (domain.RepairResult, error)
}
