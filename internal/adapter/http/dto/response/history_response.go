package response

import "geds_checkout/internal/domain/entities"

type TransactionResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"data"`
	Time   string `json:"hora"`
	Method string `json:"metodo"`
	Amount Money  `json:"valor"`
	Plan   string `json:"plano"`
	Status string `json:"status"`
}

type HistoryResponse struct {
	Count        int                   `json:"count"`
	Transactions []TransactionResponse `json:"transactions"`
}

func FromTransactions(recs []entities.TransactionRecord) HistoryResponse {
	out := HistoryResponse{Count: len(recs), Transactions: make([]TransactionResponse, 0, len(recs))}
	for _, r := range recs {
		out.Transactions = append(out.Transactions, TransactionResponse{
			ID:     r.ID,
			Date:   r.Date,
			Time:   r.Time,
			Method: string(r.Method),
			Amount: NewMoney(r.Amount),
			Plan:   r.PlanName,
			Status: r.Status,
		})
	}
	return out
}
