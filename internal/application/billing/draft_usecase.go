package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	engine "github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
	"github.com/ganaderia-aureo/pupilaje-api/pkg/logger"
)

// DraftUseCase genera los borradores mensuales de todos los clientes.
type DraftUseCase struct {
	clientRepo  repository.ClientRepository
	animalRepo  repository.AnimalRepository
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(
	clientRepo repository.ClientRepository,
	animalRepo repository.AnimalRepository,
	invoiceRepo repository.InvoiceRepository,
	log *logger.Logger,
) *DraftUseCase {
	return &DraftUseCase{
		clientRepo:  clientRepo,
		animalRepo:  animalRepo,
		invoiceRepo: invoiceRepo,
		log:         log,
		now:         time.Now,
	}
}

// GenerateDrafts crea un borrador por cliente con días facturables en el periodo.
// El fallo de un cliente se registra en Failed y no detiene al resto.
// No comprueba borradores previos del mismo periodo: cada llamada genera borradores nuevos.
func (uc *DraftUseCase) GenerateDrafts(ctx context.Context, month, year int) (*dto.GenerateDraftsResponse, error) {
	period, err := engine.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("drafts: listar clientes: %w", err)
	}

	out := &dto.GenerateDraftsResponse{
		Created: []dto.InvoiceResponse{},
		Skipped: []string{},
		Failed:  []dto.DraftFailure{},
	}
	for _, client := range clients {
		inv, err := uc.draftForClient(ctx, client, period)
		switch {
		case err != nil:
			uc.log.Error().Err(err).
				Str("client_id", client.ID).
				Str("period", period.String()).
				Msg("no se pudo generar el borrador")
			out.Failed = append(out.Failed, dto.DraftFailure{
				ClientID:   client.ID,
				ClientName: client.FiscalName,
				Error:      err.Error(),
			})
		case inv == nil:
			out.Skipped = append(out.Skipped, client.ID)
		default:
			out.Created = append(out.Created, dto.NewInvoiceResponse(inv))
		}
	}

	uc.log.Info().
		Str("period", period.String()).
		Int("created", len(out.Created)).
		Int("skipped", len(out.Skipped)).
		Int("failed", len(out.Failed)).
		Msg("borradores generados")
	return out, nil
}

func (uc *DraftUseCase) draftForClient(ctx context.Context, client *entity.Client, period engine.Period) (*entity.Invoice, error) {
	animals, err := uc.animalRepo.ListBillableByClient(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("listar animales: %w", err)
	}
	inv, err := engine.BuildDraft(client, animals, period)
	if err != nil || inv == nil {
		return nil, err
	}
	now := uc.now()
	inv.ID = uuid.New().String()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return inv, nil
}
