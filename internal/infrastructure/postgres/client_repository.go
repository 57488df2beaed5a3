package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, fiscal_name, nif, email, phone, address, initials, contract_rules, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	rules, err := json.Marshal(client.ContractRules)
	if err != nil {
		return fmt.Errorf("encode contract_rules: %w", err)
	}
	query := `
		INSERT INTO clients (id, fiscal_name, nif, email, phone, address, initials, contract_rules, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(ctx, query,
		client.ID, client.FiscalName, client.NIF, client.Email, client.Phone, client.Address,
		client.Initials, rules, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil, nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista todos los clientes por nombre fiscal.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY fiscal_name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza datos y reglas de contrato. Las facturas existentes no cambian (snapshot congelado).
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	rules, err := json.Marshal(client.ContractRules)
	if err != nil {
		return fmt.Errorf("encode contract_rules: %w", err)
	}
	query := `
		UPDATE clients
		SET fiscal_name = $2, nif = $3, email = $4, phone = $5, address = $6,
		    initials = $7, contract_rules = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		client.ID, client.FiscalName, client.NIF, client.Email, client.Phone, client.Address,
		client.Initials, rules, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente. Falla con ErrInvalidState si aún tiene animales o facturas.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el cliente tiene animales o facturas", domain.ErrInvalidState)
		}
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var (
		c     entity.Client
		rules []byte
	)
	if err := row.Scan(
		&c.ID, &c.FiscalName, &c.NIF, &c.Email, &c.Phone, &c.Address, &c.Initials,
		&rules, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.ContractRules = entity.DefaultContractRules()
	if len(rules) > 0 {
		if err := json.Unmarshal(rules, &c.ContractRules); err != nil {
			return nil, fmt.Errorf("decode contract_rules of %s: %w", c.ID, err)
		}
	}
	return &c, nil
}
