package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	engine "github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/logger"
)

// IssueResult factura emitida y su documento. Document es nil si el PDF no pudo generarse.
type IssueResult struct {
	Invoice  *entity.Invoice
	Document []byte
	Filename string
}

// IssueUseCase emite borradores asignando el número definitivo.
type IssueUseCase struct {
	txRunner    InvoiceTxRunner
	clientRepo  repository.ClientRepository
	generator   InvoiceDocumentGenerator
	issuer      IssuerProvider
	maxAttempts int
	log         *logger.Logger
}

// NewIssueUseCase construye el caso de uso. maxAttempts < 1 se trata como 1.
func NewIssueUseCase(
	txRunner InvoiceTxRunner,
	clientRepo repository.ClientRepository,
	generator InvoiceDocumentGenerator,
	issuer IssuerProvider,
	maxAttempts int,
	log *logger.Logger,
) *IssueUseCase {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &IssueUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		generator:   generator,
		issuer:      issuer,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// IssueInvoice emite la factura y genera su PDF.
//
// La numeración y el cambio de estado van en una única transacción; si otro proceso
// se adelanta con el mismo número (domain.ErrNumberConflict) se reintenta hasta maxAttempts.
// Un fallo al generar el PDF no deshace la emisión.
func (uc *IssueUseCase) IssueInvoice(ctx context.Context, invoiceID string) (*IssueResult, error) {
	var (
		inv *entity.Invoice
		err error
	)
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		inv, err = uc.issueOnce(ctx, invoiceID)
		if err == nil || !errors.Is(err, domain.ErrNumberConflict) {
			break
		}
		uc.log.Warn().Err(err).
			Str("invoice_id", invoiceID).
			Int("attempt", attempt).
			Msg("conflicto de numeración, reintentando")
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("invoice_number", inv.InvoiceNumber).
		Str("total", inv.Totals.Total.String()).
		Msg("factura emitida")

	result := &IssueResult{Invoice: inv, Filename: InvoiceFilename(inv)}
	doc, err := uc.render(ctx, inv)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("no se pudo generar el PDF de la factura emitida")
		return result, nil
	}
	result.Document = doc
	return result, nil
}

func (uc *IssueUseCase) issueOnce(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	var issued *entity.Invoice
	err := uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		inv, err := invoiceRepo.GetByIDForUpdate(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("issue: obtener factura: %w", err)
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		machine := engine.NewInvoiceFSM(inv)
		if !machine.CanEdit() {
			return fmt.Errorf("%w: la factura %s ya está %s", domain.ErrInvalidState, inv.ID, inv.Status)
		}

		client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
		if err != nil {
			return fmt.Errorf("issue: obtener cliente: %w", err)
		}
		if client == nil {
			return fmt.Errorf("%w: cliente %s de la factura %s", domain.ErrNotFound, inv.ClientID, inv.ID)
		}
		initials, err := ResolveInitials(client)
		if err != nil {
			return err
		}
		period, err := engine.NewPeriod(inv.PeriodMonth, inv.PeriodYear)
		if err != nil {
			return err
		}

		base := engine.BaseNumber(initials, period)
		if err := invoiceRepo.LockNumberPrefix(ctx, base); err != nil {
			return err
		}
		existing, err := invoiceRepo.ListNumbersWithPrefix(ctx, base)
		if err != nil {
			return err
		}
		if err := machine.Issue(ctx, engine.NextNumber(base, existing)); err != nil {
			return err
		}
		if err := invoiceRepo.MarkIssued(ctx, inv); err != nil {
			return err
		}
		issued = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

func (uc *IssueUseCase) render(ctx context.Context, inv *entity.Invoice) ([]byte, error) {
	issuer, err := uc.issuer.Issuer(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtener emisor: %w", err)
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv, issuer)
}

// ResolveInitials iniciales para la numeración: las del cliente normalizadas o,
// si están vacías, las derivadas del nombre fiscal.
func ResolveInitials(client *entity.Client) (string, error) {
	if initials := engine.NormalizeInitials(client.Initials); initials != "" {
		return initials, nil
	}
	if initials := engine.GenerateInitials(client.FiscalName); initials != "" {
		return initials, nil
	}
	return "", fmt.Errorf("%w: el cliente %s no tiene iniciales ni nombre fiscal", domain.ErrInvalidInput, client.ID)
}

// InvoiceFilename nombre del PDF: número para emitidas, id para borradores.
func InvoiceFilename(inv *entity.Invoice) string {
	if inv.InvoiceNumber != "" {
		return fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber)
	}
	return fmt.Sprintf("borrador_%s.pdf", inv.ID)
}
