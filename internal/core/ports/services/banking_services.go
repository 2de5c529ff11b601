package services

import (
	"context"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
)

// BankingSvcFacade exposes the customer/account/transaction reports to the
// handler layer.
type BankingSvcFacade interface {
	ActiveClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ActiveClient, error)
	ClientsByProduct(ctx context.Context) ([]domain.ProductClients, error)
	TopAccountsByVolume(ctx context.Context, n int) ([]domain.AccountVolume, error)
	TopAccountsByVolumePerType(ctx context.Context, n int) ([]domain.AccountTypeVolume, error)
	RepairTransactionAmounts(ctx context.Context) (domain.RepairResult, error)
}
