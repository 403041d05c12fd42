package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes (huéspedes facturables).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Crear registra un cliente nuevo. La cédula es única.
func (uc *ClienteUseCase) Crear(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombres == "" || in.Apellidos == "" || in.Cedula == "" {
		return nil, domain.ErrInvalidInput
	}
	fechaNacimiento, err := time.Parse("2006-01-02", in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByCedula(in.Cedula)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:              uuid.New().String(),
		Nombres:         in.Nombres,
		Apellidos:       in.Apellidos,
		Cedula:          in.Cedula,
		FechaNacimiento: fechaNacimiento,
		Email:           in.Email,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Nacionalidad:    in.Nacionalidad,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes con paginación.
func (uc *ClienteUseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Actualizar modifica los datos de contacto; cédula y fecha de nacimiento no son editables.
func (uc *ClienteUseCase) Actualizar(id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombres != "" {
		cliente.Nombres = in.Nombres
	}
	if in.Apellidos != "" {
		cliente.Apellidos = in.Apellidos
	}
	if in.Email != "" {
		cliente.Email = in.Email
	}
	if in.Telefono != "" {
		cliente.Telefono = in.Telefono
	}
	if in.Direccion != "" {
		cliente.Direccion = in.Direccion
	}
	if in.Nacionalidad != "" {
		cliente.Nacionalidad = in.Nacionalidad
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Eliminar borra un cliente sin reservas registradas.
func (uc *ClienteUseCase) Eliminar(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if cliente.ReservasRealizadas > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                 c.ID,
		Nombres:            c.Nombres,
		Apellidos:          c.Apellidos,
		Cedula:             c.Cedula,
		FechaNacimiento:    c.FechaNacimiento,
		Email:              c.Email,
		Telefono:           c.Telefono,
		Direccion:          c.Direccion,
		Nacionalidad:       c.Nacionalidad,
		ReservasRealizadas: c.ReservasRealizadas,
		EsFrecuente:        c.EsFrecuente,
		Edad:               c.Edad(),
	}
}
