package models

import "github.com/shopspring/decimal"

// LedgerTotals - агрегаты по счёту пользователя. Каждое пополнение
// увеличивает Balance, TotalReceived и MonthlyDeposits на одну и ту же
// сумму, каждое списание уменьшает Balance и увеличивает TotalSent и
// MonthlyWithdrawals.
type LedgerTotals struct {
	Balance            decimal.Decimal
	MonthlyDeposits    decimal.Decimal
	MonthlyWithdrawals decimal.Decimal
	TotalReceived      decimal.Decimal
	TotalSent          decimal.Decimal
}

// BalanceResponse - модель агрегатов счёта для выдачи
type BalanceResponse struct {
	Balance            float64 `json:"balance"`
	MonthlyDeposits    float64 `json:"monthlyDeposits"`
	MonthlyWithdrawals float64 `json:"monthlyWithdrawals"`
	TotalReceived      float64 `json:"totalReceived"`
	TotalSent          float64 `json:"totalSent"`
}

// MakeBalanceResponse - преобразование агрегатов счёта для выдачи
func MakeBalanceResponse(totals LedgerTotals) BalanceResponse {
	balance, _ := totals.Balance.Float64()
	deposits, _ := totals.MonthlyDeposits.Float64()
	withdrawals, _ := totals.MonthlyWithdrawals.Float64()
	received, _ := totals.TotalReceived.Float64()
	sent, _ := totals.TotalSent.Float64()
	return BalanceResponse{
		Balance:            balance,
		MonthlyDeposits:    deposits,
		MonthlyWithdrawals: withdrawals,
		TotalReceived:      received,
		TotalSent:          sent,
	}
}
