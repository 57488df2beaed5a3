package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/logger"
)

func newIssueUseCase(repo *fakeInvoiceRepo, clients *fakeClientRepo, gen *fakeGenerator, attempts int) (*billing.IssueUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{repo: repo}
	return billing.NewIssueUseCase(tx, clients, gen, fakeIssuer{}, attempts, logger.Nop()), tx
}

func TestIssueInvoice_AsignaNumeroBaseYGeneraPDF(t *testing.T) {
	repo := newFakeInvoiceRepo(draftInvoice("inv-1", "c1"))
	gen := &fakeGenerator{}
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "gan")}}, gen, 3)

	res, err := uc.IssueInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "GAN-01-2026", res.Invoice.InvoiceNumber)
	assert.Equal(t, entity.InvoiceStatusIssued, res.Invoice.Status)
	assert.Equal(t, "factura_GAN-01-2026.pdf", res.Filename)
	assert.Equal(t, []byte("%PDF-Ganadería Aureo"), res.Document)
	assert.Equal(t, []string{"GAN-01-2026"}, repo.locks)

	stored := repo.stored("inv-1")
	assert.Equal(t, entity.InvoiceStatusIssued, stored.Status)
	assert.Equal(t, "GAN-01-2026", stored.InvoiceNumber)
	assert.True(t, dec("71.28").Equal(stored.Totals.Total))
}

func TestIssueInvoice_SufijoSiElBaseExiste(t *testing.T) {
	prev := draftInvoice("inv-0", "c1")
	prev.Status = entity.InvoiceStatusIssued
	prev.InvoiceNumber = "GAN-01-2026"
	repo := newFakeInvoiceRepo(prev, draftInvoice("inv-1", "c1"))
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, &fakeGenerator{}, 3)

	res, err := uc.IssueInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "GAN-01-2026-1", res.Invoice.InvoiceNumber)
}

func TestIssueInvoice_InicialesVaciasSeDerivanDelNombre(t *testing.T) {
	repo := newFakeInvoiceRepo(draftInvoice("inv-1", "c1"))
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Juan Pérez", "")}}, &fakeGenerator{}, 1)

	res, err := uc.IssueInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "JP-01-2026", res.Invoice.InvoiceNumber)
}

func TestIssueInvoice_YaEmitidaNoCambiaElNumero(t *testing.T) {
	issued := draftInvoice("inv-1", "c1")
	issued.Status = entity.InvoiceStatusIssued
	issued.InvoiceNumber = "GAN-01-2026"
	repo := newFakeInvoiceRepo(issued)
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, &fakeGenerator{}, 3)

	_, err := uc.IssueInvoice(context.Background(), "inv-1")
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, "GAN-01-2026", repo.stored("inv-1").InvoiceNumber)
}

func TestIssueInvoice_NoEncontrada(t *testing.T) {
	uc, _ := newIssueUseCase(newFakeInvoiceRepo(), &fakeClientRepo{}, &fakeGenerator{}, 3)
	_, err := uc.IssueInvoice(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestIssueInvoice_ReintentaAnteConflicto(t *testing.T) {
	repo := newFakeInvoiceRepo(draftInvoice("inv-1", "c1"))
	repo.conflicts = 2
	uc, tx := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, &fakeGenerator{}, 3)

	res, err := uc.IssueInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "GAN-01-2026", res.Invoice.InvoiceNumber)
	assert.Equal(t, 3, tx.runs)
}

func TestIssueInvoice_AgotaReintentos(t *testing.T) {
	repo := newFakeInvoiceRepo(draftInvoice("inv-1", "c1"))
	repo.conflicts = 5
	uc, tx := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, &fakeGenerator{}, 2)

	_, err := uc.IssueInvoice(context.Background(), "inv-1")
	assert.True(t, errors.Is(err, domain.ErrNumberConflict))
	assert.Equal(t, 2, tx.runs)
	assert.Equal(t, entity.InvoiceStatusDraft, repo.stored("inv-1").Status)
}

func TestIssueInvoice_FalloDelPDFNoDeshaceLaEmision(t *testing.T) {
	repo := newFakeInvoiceRepo(draftInvoice("inv-1", "c1"))
	gen := &fakeGenerator{err: errors.New("fuente no encontrada")}
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, gen, 3)

	res, err := uc.IssueInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Nil(t, res.Document)
	assert.Equal(t, entity.InvoiceStatusIssued, repo.stored("inv-1").Status)
}

func TestIssueInvoice_EmisionesConcurrentesNumerosDistintos(t *testing.T) {
	const n = 5
	var drafts []*entity.Invoice
	for i := 0; i < n; i++ {
		drafts = append(drafts, draftInvoice(fmt.Sprintf("inv-%d", i), "c1"))
	}
	repo := newFakeInvoiceRepo(drafts...)
	uc, _ := newIssueUseCase(repo, &fakeClientRepo{clients: []*entity.Client{newClient("c1", "Ganadería Norte", "GAN")}}, &fakeGenerator{}, 3)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = map[string]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			res, err := uc.IssueInvoice(context.Background(), id)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers[res.Invoice.InvoiceNumber] = true
			mu.Unlock()
		}(fmt.Sprintf("inv-%d", i))
	}
	wg.Wait()

	assert.Len(t, numbers, n)
	assert.True(t, numbers["GAN-01-2026"])
	assert.True(t, numbers["GAN-01-2026-4"])
}

func TestResolveInitials_SinNombreNiIniciales(t *testing.T) {
	_, err := billing.ResolveInitials(&entity.Client{ID: "c1"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
