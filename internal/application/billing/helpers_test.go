package billing_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newClient(id, name, initials string) *entity.Client {
	rules := entity.DefaultContractRules()
	rules.DailyRate = decimal.NewFromInt(3)
	return &entity.Client{ID: id, FiscalName: name, NIF: "B" + id, Initials: initials, ContractRules: rules}
}

func draftInvoice(id, clientID string) *entity.Invoice {
	return &entity.Invoice{
		ID:          id,
		ClientID:    clientID,
		PeriodMonth: 1,
		PeriodYear:  2026,
		Status:      entity.InvoiceStatusDraft,
		FrozenSnapshot: entity.FrozenSnapshot{
			ClientName: "Ganadería Norte",
			LineItems:  []entity.LineItem{{Label: "ES001", Days: 22, DailyRate: dec("3"), Quantity: 1, RowTotal: dec("66")}},
		},
		Totals: entity.Totals{
			Base:            dec("66"),
			IVARate:         dec("10"),
			IVAAmount:       dec("6.6"),
			RetentionRate:   dec("2"),
			RetentionAmount: dec("1.32"),
			Total:           dec("71.28"),
		},
	}
}
