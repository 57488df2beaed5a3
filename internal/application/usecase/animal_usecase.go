package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/herd"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// Formatos de exportación del listado de animales.
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

// AnimalUseCase registro de animales y exportación del listado.
type AnimalUseCase struct {
	repo       repository.AnimalRepository
	clientRepo repository.ClientRepository
	exporters  map[string]RosterExporter
	now        func() time.Time
}

// NewAnimalUseCase construye el caso de uso. xlsx y pdf pueden ser nil si no se exporta ese formato.
func NewAnimalUseCase(repo repository.AnimalRepository, clientRepo repository.ClientRepository, xlsx, pdf RosterExporter) *AnimalUseCase {
	exporters := map[string]RosterExporter{}
	if xlsx != nil {
		exporters[ExportFormatXLSX] = xlsx
	}
	if pdf != nil {
		exporters[ExportFormatPDF] = pdf
	}
	return &AnimalUseCase{repo: repo, clientRepo: clientRepo, exporters: exporters, now: time.Now}
}

// Create registra un animal.
func (uc *AnimalUseCase) Create(ctx context.Context, in dto.AnimalRequest) (*dto.AnimalResponse, error) {
	animal, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	animal.ID = uuid.New().String()
	animal.CreatedAt = now
	animal.UpdatedAt = now
	if err := uc.repo.Create(ctx, animal); err != nil {
		return nil, err
	}
	out := dto.NewAnimalResponse(animal)
	return &out, nil
}

// Update reemplaza los datos del animal.
func (uc *AnimalUseCase) Update(ctx context.Context, id string, in dto.AnimalRequest) (*dto.AnimalResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	animal, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}
	animal.ID = existing.ID
	animal.CreatedAt = existing.CreatedAt
	animal.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, animal); err != nil {
		return nil, err
	}
	out := dto.NewAnimalResponse(animal)
	return &out, nil
}

// GetByID obtiene un animal.
func (uc *AnimalUseCase) GetByID(ctx context.Context, id string) (*dto.AnimalResponse, error) {
	animal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewAnimalResponse(animal)
	return &out, nil
}

// List lista animales filtrados.
func (uc *AnimalUseCase) List(ctx context.Context, q dto.AnimalListQuery) ([]dto.AnimalResponse, error) {
	list, err := uc.list(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnimalResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.NewAnimalResponse(a))
	}
	return out, nil
}

// Delete elimina un animal.
func (uc *AnimalUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Export genera el listado filtrado en el formato pedido (xlsx por defecto).
func (uc *AnimalUseCase) Export(ctx context.Context, q dto.AnimalListQuery) (*dto.RosterFile, error) {
	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = ExportFormatXLSX
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q no soportado", domain.ErrInvalidInput, q.Format)
	}

	animals, err := uc.list(ctx, q)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: listar clientes: %w", err)
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.FiscalName
	}

	rows := make([]dto.AnimalRosterRow, 0, len(animals))
	for _, a := range animals {
		rows = append(rows, dto.AnimalRosterRow{
			Crotal:       a.Crotal,
			ClientName:   names[a.ClientID],
			BirthDate:    a.BirthDate,
			EntryDate:    a.EntryDate,
			ExitDate:     a.ExitDate,
			Status:       a.Status,
			ReproStatus:  a.ReproStatus,
			Insem1Date:   a.ReproData.Insem1Date,
			Insem1Bull:   a.ReproData.Insem1Bull,
			Observations: a.Observations,
		})
	}

	content, err := exporter.ExportRoster(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	file := &dto.RosterFile{
		Content:  content,
		Filename: fmt.Sprintf("animales_%s.%s", uc.now().Format("2006-01-02"), format),
	}
	switch format {
	case ExportFormatPDF:
		file.ContentType = "application/pdf"
	default:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return file, nil
}

func (uc *AnimalUseCase) prepare(ctx context.Context, in dto.AnimalRequest) (*entity.Animal, error) {
	animal, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	herd.Normalize(animal)
	if err := herd.Validate(animal); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, animal.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s inexistente", domain.ErrInvalidInput, animal.ClientID)
	}
	return animal, nil
}

func (uc *AnimalUseCase) list(ctx context.Context, q dto.AnimalListQuery) ([]*entity.Animal, error) {
	filter := repository.AnimalFilter{
		ClientID:    strings.TrimSpace(q.ClientID),
		Status:      strings.ToUpper(strings.TrimSpace(q.Status)),
		ReproStatus: strings.ToUpper(strings.TrimSpace(q.ReproStatus)),
		Crotal:      strings.TrimSpace(q.Crotal),
	}
	if filter.Status != "" && !entity.ValidAnimalStatus(filter.Status) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, q.Status)
	}
	if filter.ReproStatus != "" && !entity.ValidReproStatus(filter.ReproStatus) {
		return nil, fmt.Errorf("%w: estado reproductivo %q desconocido", domain.ErrInvalidInput, q.ReproStatus)
	}
	var err error
	if filter.EntryFrom, err = dto.ParseOptionalDate("entry_from", q.EntryFrom); err != nil {
		return nil, err
	}
	if filter.EntryTo, err = dto.ParseOptionalDate("entry_to", q.EntryTo); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, filter)
}
