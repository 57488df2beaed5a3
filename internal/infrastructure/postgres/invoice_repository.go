package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, client_id, period_month, period_year, status, invoice_number,
	frozen_snapshot, totals, issued_at, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste un borrador. invoices.total se mantiene como columna NUMERIC para agregados.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	snapshot, totals, err := marshalInvoiceDocs(invoice)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (id, client_id, period_month, period_year, status, invoice_number,
		                      frozen_snapshot, totals, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(ctx, query,
		invoice.ID, invoice.ClientID, invoice.PeriodMonth, invoice.PeriodYear,
		invoice.Status, nullIfEmpty(invoice.InvoiceNumber),
		snapshot, totals, invoice.Totals.Total,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errNumberConflict(err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la factura bloqueando su fila (SELECT ... FOR UPDATE).
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista facturas más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.ClientID != "" {
		add("client_id = $%d", filter.ClientID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.PeriodMonth != 0 {
		add("period_month = $%d", filter.PeriodMonth)
	}
	if filter.PeriodYear != 0 {
		add("period_year = $%d", filter.PeriodYear)
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateDraft reescribe snapshot y totales; la condición status = 'DRAFT' impide tocar emitidas.
func (r *InvoiceRepo) UpdateDraft(ctx context.Context, invoice *entity.Invoice) error {
	snapshot, totals, err := marshalInvoiceDocs(invoice)
	if err != nil {
		return err
	}
	query := `
		UPDATE invoices
		SET frozen_snapshot = $2,
		    totals          = $3,
		    total           = $4,
		    updated_at      = now()
		WHERE id = $1 AND status = 'DRAFT'
		RETURNING updated_at`
	err = r.q.QueryRow(ctx, query, invoice.ID, snapshot, totals, invoice.Totals.Total).Scan(&invoice.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: la factura %s no está en DRAFT", domain.ErrInvalidState, invoice.ID)
		}
		return fmt.Errorf("update invoice draft: %w", err)
	}
	return nil
}

// MarkIssued aplica número y estado juntos. El índice único sobre invoice_number es la garantía final.
func (r *InvoiceRepo) MarkIssued(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET status         = $2,
		    invoice_number = $3,
		    issued_at      = now(),
		    updated_at     = now()
		WHERE id = $1 AND status = 'DRAFT'
		RETURNING issued_at, updated_at`
	err := r.q.QueryRow(ctx, query, invoice.ID, invoice.Status, invoice.InvoiceNumber).
		Scan(&invoice.IssuedAt, &invoice.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: la factura %s ya no está en DRAFT", domain.ErrInvalidState, invoice.ID)
		}
		if isUniqueViolation(err) {
			return errNumberConflict(err)
		}
		return fmt.Errorf("issue invoice: %w", err)
	}
	return nil
}

// ListNumbersWithPrefix devuelve los números que empiezan por prefix (LIKE con comodines escapados).
func (r *InvoiceRepo) ListNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1 ESCAPE '\' ORDER BY invoice_number`,
		likePrefix(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// LockNumberPrefix toma un advisory lock de transacción sobre el número base.
// Solo tiene efecto dentro de una tx (ver TxRunner.RunInvoice).
func (r *InvoiceRepo) LockNumberPrefix(ctx context.Context, prefix string) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, prefix); err != nil {
		return fmt.Errorf("lock invoice number %s: %w", prefix, err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv              entity.Invoice
		number           *string
		snapshot, totals []byte
	)
	if err := row.Scan(
		&inv.ID, &inv.ClientID, &inv.PeriodMonth, &inv.PeriodYear, &inv.Status, &number,
		&snapshot, &totals, &inv.IssuedAt, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	inv.InvoiceNumber = derefStr(number)
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &inv.FrozenSnapshot); err != nil {
			return nil, fmt.Errorf("decode frozen_snapshot of %s: %w", inv.ID, err)
		}
	}
	if len(totals) > 0 {
		if err := json.Unmarshal(totals, &inv.Totals); err != nil {
			return nil, fmt.Errorf("decode totals of %s: %w", inv.ID, err)
		}
	}
	return &inv, nil
}

func marshalInvoiceDocs(invoice *entity.Invoice) (snapshot, totals []byte, err error) {
	snapshot, err = json.Marshal(invoice.FrozenSnapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("encode frozen_snapshot: %w", err)
	}
	totals, err = json.Marshal(invoice.Totals)
	if err != nil {
		return nil, nil, fmt.Errorf("encode totals: %w", err)
	}
	return snapshot, totals, nil
}

func errNumberConflict(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrNumberConflict, err)
}
