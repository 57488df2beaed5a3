package billing_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

type fakeClientRepo struct {
	clients []*entity.Client
	listErr error
}

func (r *fakeClientRepo) Create(ctx context.Context, c *entity.Client) error {
	r.clients = append(r.clients, c)
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.clients, r.listErr
}

func (r *fakeClientRepo) Update(ctx context.Context, c *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(ctx context.Context, id string) error        { return nil }

type fakeAnimalRepo struct {
	animals []*entity.Animal
	failFor string // client_id cuyo listado falla
}

func (r *fakeAnimalRepo) Create(ctx context.Context, a *entity.Animal) error { return nil }
func (r *fakeAnimalRepo) GetByID(ctx context.Context, id string) (*entity.Animal, error) {
	return nil, nil
}
func (r *fakeAnimalRepo) List(ctx context.Context, f repository.AnimalFilter) ([]*entity.Animal, error) {
	return r.animals, nil
}

func (r *fakeAnimalRepo) ListBillableByClient(ctx context.Context, clientID string) ([]*entity.Animal, error) {
	if clientID == r.failFor {
		return nil, errors.New("conexión perdida")
	}
	var out []*entity.Animal
	for _, a := range r.animals {
		if a.ClientID == clientID && a.Status != entity.AnimalStatusHistoric {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAnimalRepo) Update(ctx context.Context, a *entity.Animal) error { return nil }
func (r *fakeAnimalRepo) Delete(ctx context.Context, id string) error        { return nil }

// fakeInvoiceRepo guarda copias para que los cambios en memoria del caller no se filtren sin persistir.
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	// conflicts número de MarkIssued que fallan con ErrNumberConflict antes de aceptar.
	conflicts int
	locks     []string
}

func newFakeInvoiceRepo(invs ...*entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	for _, inv := range invs {
		cp := *inv
		r.invoices[inv.ID] = &cp
	}
	return r
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeInvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if f.ClientID != "" && inv.ClientID != f.ClientID {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateDraft(ctx context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.invoices[inv.ID]
	if !ok || stored.Status != entity.InvoiceStatusDraft {
		return domain.ErrInvalidState
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) MarkIssued(ctx context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts > 0 {
		r.conflicts--
		return domain.ErrNumberConflict
	}
	stored, ok := r.invoices[inv.ID]
	if !ok || stored.Status != entity.InvoiceStatusDraft {
		return domain.ErrInvalidState
	}
	for _, other := range r.invoices {
		if other.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrNumberConflict
		}
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) ListNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, inv := range r.invoices {
		if inv.InvoiceNumber != "" && strings.HasPrefix(inv.InvoiceNumber, prefix) {
			out = append(out, inv.InvoiceNumber)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) LockNumberPrefix(ctx context.Context, prefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locks = append(r.locks, prefix)
	return nil
}

func (r *fakeInvoiceRepo) stored(id string) *entity.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoices[id]
}

// fakeTxRunner serializa las transacciones como lo haría el advisory lock.
type fakeTxRunner struct {
	mu   sync.Mutex
	repo *fakeInvoiceRepo
	runs int
}

func (t *fakeTxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.runs++
	return fn(t.repo)
}

type fakeGenerator struct {
	err   error
	calls int
	last  *entity.Invoice
}

func (g *fakeGenerator) GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, issuer entity.IssuerSettings) ([]byte, error) {
	g.calls++
	g.last = inv
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-" + issuer.FiscalName), nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issuer(ctx context.Context) (entity.IssuerSettings, error) {
	return entity.IssuerSettings{FiscalName: "Ganadería Aureo"}, nil
}
