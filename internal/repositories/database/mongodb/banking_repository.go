package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	portsrepo "github.com/SscSPs/mongo_analytics_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bankingRepository implements the BankingRepository interface.
type bankingRepository struct {
	BaseRepository
}

// newBankingRepository creates a new banking repository.
func newBankingRepository(db *mongo.Database) portsrepo.BankingRepository {
	return &bankingRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// ActiveClients joins customers to accounts and filters by the normalized
// criteria.
func (r *bankingRepository) ActiveClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ActiveClient, error) {
	var rows []struct {
		Name    string `bson:"name"`
		Address string `bson:"address"`
		Email   string `bson:"email"`
		Cuenta  int64  `bson:"cuenta"`
		Limite  int64  `bson:"limite"`
	}
	if err := r.aggregate(ctx, customersCollection, activeClientsPipeline(filter), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.ActiveClient, len(rows))
	for i, row := range rows {
		result[i] = domain.ActiveClient{
			Name:         row.Name,
			Address:      row.Address,
			Email:        row.Email,
			AccountID:    row.Cuenta,
			AccountLimit: row.Limite,
		}
	}
	return result, nil
}

// ClientsByProduct counts distinct customers per account product.
func (r *bankingRepository) ClientsByProduct(ctx context.Context) ([]domain.ProductClients, error) {
	var rows []struct {
		Producto      string `bson:"producto"`
		TotalClientes int64  `bson:"total_clientes"`
	}
	if err := r.aggregate(ctx, customersCollection, clientsByProductPipeline(), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.ProductClients, len(rows))
	for i, row := range rows {
		result[i] = domain.ProductClients{
			Product:      row.Producto,
			TotalClients: row.TotalClientes,
		}
	}
	return result, nil
}

// TopAccountsByVolume returns the n accounts with the highest summed
// transaction totals.
func (r *bankingRepository) TopAccountsByVolume(ctx context.Context, n int) ([]domain.AccountVolume, error) {
	var rows []struct {
		AccountID  int64   `bson:"account_id"`
		MontoTotal float64 `bson:"monto_total"`
	}
	if err := r.aggregate(ctx, transactionsCollection, topAccountsPipeline(n), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.AccountVolume, len(rows))
	for i, row := range rows {
		result[i] = domain.AccountVolume{
			AccountID: row.AccountID,
			Total:     decimal.NewFromFloat(row.MontoTotal),
		}
	}
	return result, nil
}

// TopAccountsByVolumePerType groups by (account, transaction code) and joins
// the owning customer's name onto each surviving row.
func (r *bankingRepository) TopAccountsByVolumePerType(ctx context.Context, n int) ([]domain.AccountTypeVolume, error) {
	var rows []struct {
		AccountID  int64   `bson:"account_id"`
		Nombre     string  `bson:"nombre"`
		MontoTotal float64 `bson:"monto_total"`
		Tipo       string  `bson:"tipo"`
	}
	if err := r.aggregate(ctx, transactionsCollection, topAccountsByTypePipeline(n), &rows); err != nil {
		return nil, err
	}

	result := make([]domain.AccountTypeVolume, len(rows))
	for i, row := range rows {
		result[i] = domain.AccountTypeVolume{
			AccountID:       row.AccountID,
			CustomerName:    row.Nombre,
			Total:           decimal.NewFromFloat(row.MontoTotal),
			TransactionCode: row.Tipo,
		}
	}
	return result, nil
}

// RepairTransactionAmounts rewrites every transaction entry's price and total
// to double. The update is awaited so the caller gets real counts, and a
// mid-bulk failure surfaces as an error instead of a blind success.
func (r *bankingRepository) RepairTransactionAmounts(ctx context.Context) (domain.RepairResult, error) {
	res, err := r.DB.Collection(transactionsCollection).UpdateMany(ctx, bson.M{}, repairTransactionsUpdate())
	if err != nil {
		return domain.RepairResult{}, fmt.Errorf("error repairing transaction amounts: %w", err)
	}
	return domain.RepairResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
