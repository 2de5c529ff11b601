package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mongo_analytics_app/internal/apperrors"
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mongo_analytics_app/internal/core/ports/services"
)

// bankingService implements the BankingSvcFacade interface.
type bankingService struct {
	BaseService
	bankingRepo portsrepo.BankingRepository
}

// NewBankingService creates a new banking service.
func NewBankingService(repo portsrepo.BankingRepository) portssvc.BankingSvcFacade {
	return &bankingService{
		bankingRepo: repo,
	}
}

// Ensure bankingService implements the BankingSvcFacade interface
var _ portssvc.BankingSvcFacade = (*bankingService)(nil)

// ActiveClients generates the active clients report. A zero MinAccountLimit
// falls back to the documented default threshold.
func (s *bankingService) ActiveClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ActiveClient, error) {
	if filter.MinAccountLimit <= 0 {
		filter.MinAccountLimit = domain.DefaultAccountLimitThreshold
	}

	rows, err := s.bankingRepo.ActiveClients(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve active clients",
			slog.Int64("min_account_limit", filter.MinAccountLimit))
		return nil, fmt.Errorf("failed to retrieve active clients: %w", err)
	}

	s.LogInfo(ctx, "Active clients report generated",
		slog.Int64("min_account_limit", filter.MinAccountLimit),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ClientsByProduct generates the clients-per-product report.
func (s *bankingService) ClientsByProduct(ctx context.Context) ([]domain.ProductClients, error) {
	rows, err := s.bankingRepo.ClientsByProduct(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve clients by product")
		return nil, fmt.Errorf("failed to retrieve clients by product: %w", err)
	}

	s.LogInfo(ctx, "Clients by product report generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// TopAccountsByVolume generates the top accounts report.
func (s *bankingService) TopAccountsByVolume(ctx context.Context, n int) ([]domain.AccountVolume, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be at least 1, got %d", apperrors.ErrValidation, n)
	}

	rows, err := s.bankingRepo.TopAccountsByVolume(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top accounts", slog.Int("n", n))
		return nil, fmt.Errorf("failed to retrieve top accounts: %w", err)
	}

	s.LogInfo(ctx, "Top accounts report generated", slog.Int("n", n), slog.Int("row_count", len(rows)))
	return rows, nil
}

// TopAccountsByVolumePerType generates the top accounts per transaction type
// report.
func (s *bankingService) TopAccountsByVolumePerType(ctx context.Context, n int) ([]domain.AccountTypeVolume, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be at least 1, got %d", apperrors.ErrValidation, n)
	}

	rows, err := s.bankingRepo.TopAccountsByVolumePerType(ctx, n)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top accounts by type", slog.Int("n", n))
		return nil, fmt.Errorf("failed to retrieve top accounts by type: %w", err)
	}

	s.LogInfo(ctx, "Top accounts by type report generated", slog.Int("n", n), slog.Int("row_count", len(rows)))
	return rows, nil
}

// RepairTransactionAmounts rewrites string-typed transaction amounts to
// numeric and reports the counts once the bulk update has completed.
func (s *bankingService) RepairTransactionAmounts(ctx context.Context) (domain.RepairResult, error) {
	result, err := s.bankingRepo.RepairTransactionAmounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Transaction amount repair failed")
		return domain.RepairResult{}, err
	}

	s.LogInfo(ctx, "Transaction amount repair completed",
		slog.Int64("matched_count", result.MatchedCount),
		slog.Int64("modified_count", result.ModifiedCount))
	return result, nil
}
