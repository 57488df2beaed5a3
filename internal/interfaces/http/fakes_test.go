package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// store estado compartido por los repositorios en memoria.
type store struct {
	mu       sync.Mutex
	clients  map[string]*entity.Client
	animals  map[string]*entity.Animal
	invoices map[string]*entity.Invoice
	issuer   *entity.IssuerSettings
}

func newStore() *store {
	return &store{
		clients:  map[string]*entity.Client{},
		animals:  map[string]*entity.Animal{},
		invoices: map[string]*entity.Invoice{},
	}
}

type clientRepo struct{ s *store }

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r clientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r clientRepo) List(_ context.Context) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FiscalName < out[j].FiscalName })
	return out, nil
}

func (r clientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r clientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}

type animalRepo struct{ s *store }

func (r animalRepo) Create(_ context.Context, a *entity.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.animals[a.ID] = &cp
	return nil
}

func (r animalRepo) GetByID(_ context.Context, id string) (*entity.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.animals[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r animalRepo) List(_ context.Context, f repository.AnimalFilter) ([]*entity.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Animal
	for _, a := range r.s.animals {
		if f.ClientID != "" && a.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Crotal != "" && !strings.Contains(strings.ToLower(a.Crotal), strings.ToLower(f.Crotal)) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Crotal < out[j].Crotal })
	return out, nil
}

func (r animalRepo) ListBillableByClient(_ context.Context, clientID string) ([]*entity.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Animal
	for _, a := range r.s.animals {
		if a.ClientID == clientID && a.Status != entity.AnimalStatusHistoric {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r animalRepo) Update(_ context.Context, a *entity.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.animals[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.s.animals[a.ID] = &cp
	return nil
}

func (r animalRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.animals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.animals, id)
	return nil
}

type invoiceRepo struct{ s *store }

func (r invoiceRepo) lock() func() {
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r invoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r invoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	defer r.lock()()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r invoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r invoiceRepo) List(_ context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	defer r.lock()()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if f.ClientID != "" && inv.ClientID != f.ClientID {
			continue
		}
		if f.PeriodMonth != 0 && inv.PeriodMonth != f.PeriodMonth {
			continue
		}
		if f.PeriodYear != 0 && inv.PeriodYear != f.PeriodYear {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r invoiceRepo) UpdateDraft(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	cur, ok := r.s.invoices[inv.ID]
	if !ok || cur.Status != entity.InvoiceStatusDraft {
		return domain.ErrInvalidState
	}
	cur.FrozenSnapshot = inv.FrozenSnapshot
	cur.Totals = inv.Totals
	return nil
}

func (r invoiceRepo) MarkIssued(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	cur, ok := r.s.invoices[inv.ID]
	if !ok || cur.Status != entity.InvoiceStatusDraft {
		return domain.ErrInvalidState
	}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	cur.Status = entity.InvoiceStatusIssued
	cur.InvoiceNumber = inv.InvoiceNumber
	cur.IssuedAt = &now
	inv.IssuedAt = &now
	return nil
}

func (r invoiceRepo) ListNumbersWithPrefix(_ context.Context, prefix string) ([]string, error) {
	defer r.lock()()
	var out []string
	for _, inv := range r.s.invoices {
		if inv.InvoiceNumber != "" && strings.HasPrefix(inv.InvoiceNumber, prefix) {
			out = append(out, inv.InvoiceNumber)
		}
	}
	return out, nil
}

func (r invoiceRepo) LockNumberPrefix(context.Context, string) error { return nil }

// txRunner serializa las emisiones como lo haría el advisory lock.
type txRunner struct {
	mu *sync.Mutex
	s  *store
}

func (t txRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(invoiceRepo{s: t.s})
}

type settingsRepo struct{ s *store }

func (r settingsRepo) GetIssuer(context.Context) (*entity.IssuerSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.issuer == nil {
		return nil, nil
	}
	cp := *r.s.issuer
	return &cp, nil
}

func (r settingsRepo) SaveIssuer(_ context.Context, in *entity.IssuerSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *in
	r.s.issuer = &cp
	return nil
}

// analyticsRepo cuenta sobre el store.
type analyticsRepo struct{ s *store }

func (r analyticsRepo) CountAnimalsByStatus(_ context.Context, status string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.animals {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r analyticsRepo) CountClients(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.clients), nil
}

func (r analyticsRepo) CountInvoices(_ context.Context, status string, month, year int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, inv := range r.s.invoices {
		if inv.Status == status && inv.PeriodMonth == month && inv.PeriodYear == year {
			n++
		}
	}
	return n, nil
}

func (r analyticsRepo) SumInvoiceTotals(_ context.Context, status string, month, year int) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := decimal.Zero
	for _, inv := range r.s.invoices {
		if inv.Status == status && inv.PeriodMonth == month && inv.PeriodYear == year {
			sum = sum.Add(inv.Totals.Total)
		}
	}
	return sum, nil
}

type pdfStub struct{}

func (pdfStub) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, _ entity.IssuerSettings) ([]byte, error) {
	return []byte("%PDF-" + inv.InvoiceNumber), nil
}

type rosterStub struct{ prefix string }

func (s rosterStub) ExportRoster(_ context.Context, rows []dto.AnimalRosterRow) ([]byte, error) {
	var b strings.Builder
	b.WriteString(s.prefix)
	for _, r := range rows {
		b.WriteString(";" + r.Crotal)
	}
	return []byte(b.String()), nil
}
