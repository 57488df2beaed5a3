package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/looplab/fsm"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// EventIssue emite la factura: DRAFT → ISSUED.
const EventIssue = "issue"

// InvoiceFSM envuelve una factura con su máquina de estados.
type InvoiceFSM struct {
	invoice *entity.Invoice
	fsm     *fsm.FSM
}

// NewInvoiceFSM crea la máquina de estados partiendo del estado actual de la factura.
func NewInvoiceFSM(inv *entity.Invoice) *InvoiceFSM {
	f := &InvoiceFSM{invoice: inv}
	f.fsm = fsm.NewFSM(
		inv.Status,
		fsm.Events{
			{Name: EventIssue, Src: []string{entity.InvoiceStatusDraft}, Dst: entity.InvoiceStatusIssued},
		},
		fsm.Callbacks{},
	)
	return f
}

// Issue asigna el número y pasa la factura a ISSUED en un solo paso.
// Falla con domain.ErrInvalidState si ya estaba emitida, sin tocar el número.
func (f *InvoiceFSM) Issue(ctx context.Context, number string) error {
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("%w: número de factura vacío", domain.ErrInvalidInput)
	}
	if !f.fsm.Can(EventIssue) {
		return fmt.Errorf("%w: la factura %s está en estado %s", domain.ErrInvalidState, f.invoice.ID, f.invoice.Status)
	}
	if err := f.fsm.Event(ctx, EventIssue); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidState, err)
	}
	f.invoice.Status = f.fsm.Current()
	f.invoice.InvoiceNumber = number
	return nil
}

// CanEdit indica si la factura admite cambios (solo en DRAFT).
func (f *InvoiceFSM) CanEdit() bool {
	return f.fsm.Current() == entity.InvoiceStatusDraft
}

// Current devuelve el estado actual.
func (f *InvoiceFSM) Current() string {
	return f.fsm.Current()
}
