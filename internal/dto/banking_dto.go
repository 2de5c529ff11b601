package dto

import (
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ActiveClientsParams defines query parameters for the active clients
// report. Pointers distinguish "absent" from zero values: an absent limit
// applies the default threshold, an unparseable one is a bind error.
type ActiveClientsParams struct {
	Active *bool `form:"active"`
	Limit  *int  `form:"limit" binding:"omitempty,min=1"`
}

// ToFilter normalizes the raw parameters into filter criteria, injecting the
// default account-limit threshold when none was supplied.
func (p ActiveClientsParams) ToFilter() domain.ClientFilter {
	filter := domain.ClientFilter{
		Active:          p.Active,
		MinAccountLimit: domain.DefaultAccountLimitThreshold,
	}
	if p.Limit != nil {
		filter.MinAccountLimit = int64(*p.Limit)
	}
	return filter
}

// TopAccountsParams defines query parameters for the top-N account reports.
type TopAccountsParams struct {
	N *int `form:"n" binding:"required,min=1"`
}

// ActiveClientResponse is one row of the active clients report.
type ActiveClientResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Cuenta  int64  `json:"cuenta"`
	Limite  int64  `json:"limite"`
}

// ToActiveClientResponses converts the domain report rows.
func ToActiveClientResponses(rows []domain.ActiveClient) []ActiveClientResponse {
	responses := make([]ActiveClientResponse, len(rows))
	for i, row := range rows {
		responses[i] = ActiveClientResponse{
			Name:    row.Name,
			Address: row.Address,
			Email:   row.Email,
			Cuenta:  row.AccountID,
			Limite:  row.AccountLimit,
		}
	}
	return responses
}

// ProductClientsResponse is one row of the clients-per-product report.
type ProductClientsResponse struct {
	Producto      string `json:"producto"`
	TotalClientes int64  `json:"total_clientes"`
}

// ToProductClientsResponses converts the domain report rows.
func ToProductClientsResponses(rows []domain.ProductClients) []ProductClientsResponse {
	responses := make([]ProductClientsResponse, len(rows))
	for i, row := range rows {
		responses[i] = ProductClientsResponse{
			Producto:      row.Product,
			TotalClientes: row.TotalClients,
		}
	}
	return responses
}

// AccountVolumeResponse is one row of the top accounts report.
type AccountVolumeResponse struct {
	AccountID  int64           `json:"account_id"`
	MontoTotal decimal.Decimal `json:"monto_total"`
}

// ToAccountVolumeResponses converts the domain report rows.
func ToAccountVolumeResponses(rows []domain.AccountVolume) []AccountVolumeResponse {
	responses := make([]AccountVolumeResponse, len(rows))
	for i, row := range rows {
		responses[i] = AccountVolumeResponse{
			AccountID:  row.AccountID,
			MontoTotal: row.Total,
		}
	}
	return responses
}

// AccountTypeVolumeResponse is one row of the top accounts per transaction
// type report.
type AccountTypeVolumeResponse struct {
	AccountID  int64           `json:"account_id"`
	Nombre     string          `json:"nombre"`
	MontoTotal decimal.Decimal `json:"monto_total"`
	Tipo       string          `json:"tipo"`
}

// ToAccountTypeVolumeResponses converts the domain report rows.
func ToAccountTypeVolumeResponses(rows []domain.AccountTypeVolume) []AccountTypeVolumeResponse {
	responses := make([]AccountTypeVolumeResponse, len(rows))
	for i, row := range rows {
		responses[i] = AccountTypeVolumeResponse{
			AccountID:  row.AccountID,
			Nombre:     row.CustomerName,
			MontoTotal: row.Total,
			Tipo:       row.TransactionCode,
		}
	}
	return responses
}

// RepairResultResponse is the envelope returned by the transaction numeric
// repair once the bulk update has completed.
type RepairResultResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// ToRepairResultResponse converts the domain repair outcome.
func ToRepairResultResponse(result domain.RepairResult) RepairResultResponse {
	return RepairResultResponse{
		Success:       true,
		Message:       "transaction amounts coerced to numeric",
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
}
