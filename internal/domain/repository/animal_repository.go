package repository

import (
	"context"
	"time"

	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
)

// AnimalFilter filtros del listado de animales; los campos vacíos no filtran.
type AnimalFilter struct {
	ClientID    string
	Status      string
	ReproStatus string
	Crotal      string     // coincidencia parcial, sin distinguir mayúsculas
	EntryFrom   *time.Time // entry_date >= EntryFrom
	EntryTo     *time.Time // entry_date <= EntryTo
}

// AnimalRepository define el puerto de persistencia para Animal.
type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error
	GetByID(ctx context.Context, id string) (*entity.Animal, error)
	List(ctx context.Context, filter AnimalFilter) ([]*entity.Animal, error)
	// ListBillableByClient devuelve los animales del cliente con status distinto de HISTORIC.
	ListBillableByClient(ctx context.Context, clientID string) ([]*entity.Animal, error)
	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id string) error
}
