// Package analytics contiene los casos de uso del panel principal.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/format"
)

// DashboardUseCase genera el resumen del periodo.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// La previsión es orientativa: animales activos × projectionRate × días del mes,
// sin aplicar las reglas de cada cliente.
type DashboardUseCase struct {
	analyticsRepo  repository.AnalyticsRepository
	projectionRate decimal.Decimal
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, projectionRate decimal.Decimal) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, projectionRate: projectionRate}
}

// GetSummary construye el DashboardResponse del periodo indicado.
// Las consultas son independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, month, year int) (*dto.DashboardResponse, error) {
	period, err := billing.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		sum decimal.Decimal
		err error
	}

	activeCh := make(chan countResult, 1)
	clientsCh := make(chan countResult, 1)
	draftsCh := make(chan countResult, 1)
	draftsSumCh := make(chan sumResult, 1)
	issuedSumCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountAnimalsByStatus(ctx, entity.AnimalStatusActive)
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountClients(ctx)
		clientsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountInvoices(ctx, entity.InvoiceStatusDraft, period.Month, period.Year)
		draftsCh <- countResult{n, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.SumInvoiceTotals(ctx, entity.InvoiceStatusDraft, period.Month, period.Year)
		draftsSumCh <- sumResult{s, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.SumInvoiceTotals(ctx, entity.InvoiceStatusIssued, period.Month, period.Year)
		issuedSumCh <- sumResult{s, err}
	}()

	active := <-activeCh
	clients := <-clientsCh
	drafts := <-draftsCh
	draftsSum := <-draftsSumCh
	issuedSum := <-issuedSumCh

	for _, e := range []error{active.err, clients.err, drafts.err, draftsSum.err, issuedSum.err} {
		if e != nil {
			return nil, fmt.Errorf("dashboard: %w", e)
		}
	}

	projected := uc.projectionRate.
		Mul(decimal.NewFromInt(int64(active.n))).
		Mul(decimal.NewFromInt(int64(period.Days())))

	return &dto.DashboardResponse{
		ActiveAnimals:    active.n,
		TotalClients:     clients.n,
		PendingDrafts:    drafts.n,
		DraftsTotal:      draftsSum.sum,
		IssuedTotal:      issuedSum.sum,
		ProjectedRevenue: projected,
		PeriodMonth:      period.Month,
		PeriodYear:       period.Year,
		DateLabel:        format.MonthYear(period.Month, period.Year),
	}, nil
}
