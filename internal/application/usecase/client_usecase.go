package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/dto"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/entity"
	"github.com/ganaderia-aureo/pupilaje-api/internal/domain/repository"
)

// ClientUseCase aplica reglas de negocio para clientes (casos de uso).
type ClientUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

// Create crea un cliente. Iniciales vacías se generan desde el nombre fiscal;
// contract_rules ausente toma las reglas por defecto.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{ID: uuid.New().String()}
	if err := applyClientRequest(client, in); err != nil {
		return nil, err
	}
	now := uc.now()
	client.CreatedAt = now
	client.UpdatedAt = now
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(client)
	return &out, nil
}

// Update reemplaza los datos del cliente. Solo afecta a borradores futuros:
// las facturas ya generadas conservan su snapshot.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyClientRequest(client, in); err != nil {
		return nil, err
	}
	client.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	out := dto.NewClientResponse(client)
	return &out, nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewClientResponse(client)
	return &out, nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewClientResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// SuggestInitials iniciales propuestas para un nombre fiscal.
func (uc *ClientUseCase) SuggestInitials(fiscalName string) dto.InitialsResponse {
	return dto.InitialsResponse{Initials: billing.GenerateInitials(fiscalName)}
}

func applyClientRequest(client *entity.Client, in dto.ClientRequest) error {
	name := strings.TrimSpace(in.FiscalName)
	if name == "" {
		return fmt.Errorf("%w: fiscal_name requerido", domain.ErrInvalidInput)
	}
	rules, err := parseContractRules(in.ContractRules)
	if err != nil {
		return err
	}
	initials := billing.NormalizeInitials(in.Initials)
	if initials == "" {
		initials = billing.GenerateInitials(name)
	}

	client.FiscalName = name
	client.NIF = strings.ToUpper(strings.TrimSpace(in.NIF))
	client.Email = strings.TrimSpace(in.Email)
	client.Phone = strings.TrimSpace(in.Phone)
	client.Address = strings.TrimSpace(in.Address)
	client.Initials = initials
	client.ContractRules = rules
	return nil
}

func parseContractRules(raw json.RawMessage) (entity.ContractRules, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return entity.DefaultContractRules(), nil
	}
	var rules entity.ContractRules
	if err := json.Unmarshal(trimmed, &rules); err != nil {
		return entity.ContractRules{}, fmt.Errorf("%w: %v", domain.ErrInvalidContractRules, err)
	}
	if err := rules.Validate(); err != nil {
		return entity.ContractRules{}, fmt.Errorf("%w: %v", domain.ErrInvalidContractRules, err)
	}
	return rules, nil
}
