package usecase_test

import (
	"context"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

type memClientRepo struct {
	byID map[string]*entity.Client
}

func newMemClientRepo(clients ...*entity.Client) *memClientRepo {
	r := &memClientRepo{byID: map[string]*entity.Client{}}
	for _, c := range clients {
		r.byID[c.ID] = c
	}
	return r
}

func (r *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Update(ctx context.Context, c *entity.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type memAnimalRepo struct {
	byID       map[string]*entity.Animal
	lastFilter repository.AnimalFilter
}

func newMemAnimalRepo() *memAnimalRepo {
	return &memAnimalRepo{byID: map[string]*entity.Animal{}}
}

func (r *memAnimalRepo) Create(ctx context.Context, a *entity.Animal) error {
	r.byID[a.ID] = a
	return nil
}

func (r *memAnimalRepo) GetByID(ctx context.Context, id string) (*entity.Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAnimalRepo) List(ctx context.Context, f repository.AnimalFilter) ([]*entity.Animal, error) {
	r.lastFilter = f
	var out []*entity.Animal
	for _, a := range r.byID {
		if f.ClientID != "" && a.ClientID != f.ClientID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memAnimalRepo) ListBillableByClient(ctx context.Context, clientID string) ([]*entity.Animal, error) {
	return nil, nil
}

func (r *memAnimalRepo) Update(ctx context.Context, a *entity.Animal) error {
	r.byID[a.ID] = a
	return nil
}

func (r *memAnimalRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type recordingExporter struct {
	rows []dto.AnimalRosterRow
}

func (e *recordingExporter) ExportRoster(ctx context.Context, rows []dto.AnimalRosterRow) ([]byte, error) {
	e.rows = rows
	return []byte("export"), nil
}

type memSettingsRepo struct {
	saved *entity.IssuerSettings
}

func (r *memSettingsRepo) GetIssuer(ctx context.Context) (*entity.IssuerSettings, error) {
	return r.saved, nil
}

func (r *memSettingsRepo) SaveIssuer(ctx context.Context, s *entity.IssuerSettings) error {
	r.saved = s
	return nil
}
