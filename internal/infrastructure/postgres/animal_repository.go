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

var _ repository.AnimalRepository = (*AnimalRepo)(nil)

const animalColumns = `id, crotal, client_id, birth_date, entry_date, exit_date, status, repro_status,
	repro_data, observations, created_at, updated_at`

// AnimalRepo implementación de AnimalRepository (usable con pool o tx).
type AnimalRepo struct {
	q Querier
}

// NewAnimalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnimalRepository(q Querier) *AnimalRepo {
	return &AnimalRepo{q: q}
}

// Create persiste un animal.
func (r *AnimalRepo) Create(ctx context.Context, animal *entity.Animal) error {
	if animal.ID == "" {
		animal.ID = uuid.New().String()
	}
	repro, err := json.Marshal(animal.ReproData)
	if err != nil {
		return fmt.Errorf("encode repro_data: %w", err)
	}
	query := `
		INSERT INTO animals (id, crotal, client_id, birth_date, entry_date, exit_date, status, repro_status,
		                     repro_data, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		animal.ID, animal.Crotal, animal.ClientID, animal.BirthDate, animal.EntryDate, animal.ExitDate,
		animal.Status, animal.ReproStatus, repro, animal.Observations, animal.CreatedAt, animal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente %s inexistente", domain.ErrInvalidInput, animal.ClientID)
		}
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

// GetByID obtiene un animal por ID; nil, nil si no existe.
func (r *AnimalRepo) GetByID(ctx context.Context, id string) (*entity.Animal, error) {
	a, err := scanAnimal(r.q.QueryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal: %w", err)
	}
	return a, nil
}

// List lista animales aplicando los filtros no vacíos, ordenados por crotal.
func (r *AnimalRepo) List(ctx context.Context, filter repository.AnimalFilter) ([]*entity.Animal, error) {
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
	if filter.ReproStatus != "" {
		add("repro_status = $%d", filter.ReproStatus)
	}
	if c := strings.TrimSpace(filter.Crotal); c != "" {
		add(`crotal ILIKE $%d ESCAPE '\'`, "%"+likePrefix(c))
	}
	if filter.EntryFrom != nil {
		add("entry_date >= $%d", *filter.EntryFrom)
	}
	if filter.EntryTo != nil {
		add("entry_date <= $%d", *filter.EntryTo)
	}
	query := `SELECT ` + animalColumns + ` FROM animals`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY crotal"
	return r.list(ctx, query, args...)
}

// ListBillableByClient animales del cliente que no son HISTORIC.
func (r *AnimalRepo) ListBillableByClient(ctx context.Context, clientID string) ([]*entity.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals
		WHERE client_id = $1 AND status <> 'HISTORIC'
		ORDER BY entry_date, crotal`
	return r.list(ctx, query, clientID)
}

func (r *AnimalRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Animal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update actualiza un animal.
func (r *AnimalRepo) Update(ctx context.Context, animal *entity.Animal) error {
	repro, err := json.Marshal(animal.ReproData)
	if err != nil {
		return fmt.Errorf("encode repro_data: %w", err)
	}
	query := `
		UPDATE animals
		SET crotal = $2, client_id = $3, birth_date = $4, entry_date = $5, exit_date = $6,
		    status = $7, repro_status = $8, repro_data = $9, observations = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		animal.ID, animal.Crotal, animal.ClientID, animal.BirthDate, animal.EntryDate, animal.ExitDate,
		animal.Status, animal.ReproStatus, repro, animal.Observations, animal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente %s inexistente", domain.ErrInvalidInput, animal.ClientID)
		}
		return fmt.Errorf("update animal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un animal por ID.
func (r *AnimalRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAnimal(row pgx.Row) (*entity.Animal, error) {
	var (
		a     entity.Animal
		repro []byte
	)
	if err := row.Scan(
		&a.ID, &a.Crotal, &a.ClientID, &a.BirthDate, &a.EntryDate, &a.ExitDate, &a.Status, &a.ReproStatus,
		&repro, &a.Observations, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(repro) > 0 {
		if err := json.Unmarshal(repro, &a.ReproData); err != nil {
			return nil, fmt.Errorf("decode repro_data of %s: %w", a.ID, err)
		}
	}
	return &a, nil
}
