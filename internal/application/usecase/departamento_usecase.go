package usecase

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DepartamentoUseCase casos de uso CRUD para departamentos, incluida la
// gestión de sus imágenes en el bucket.
type DepartamentoUseCase struct {
	repo    repository.DepartamentoRepository
	almacen AlmacenImagenes
}

// NewDepartamentoUseCase construye el caso de uso.
func NewDepartamentoUseCase(repo repository.DepartamentoRepository, almacen AlmacenImagenes) *DepartamentoUseCase {
	return &DepartamentoUseCase{repo: repo, almacen: almacen}
}

// Crear registra un departamento nuevo en estado disponible.
func (uc *DepartamentoUseCase) Crear(in dto.CrearDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	if in.Numero == "" || !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioNoche.LessThan(decimal.Zero) || in.CapacidadPersonas < 1 {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByNumero(in.Numero)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	dep := &entity.Departamento{
		ID:                uuid.New().String(),
		Numero:            in.Numero,
		Tipo:              in.Tipo,
		Descripcion:       in.Descripcion,
		Piso:              in.Piso,
		PrecioNoche:       in.PrecioNoche,
		CapacidadPersonas: in.CapacidadPersonas,
		NumeroCamas:       in.NumeroCamas,
		Estado:            entity.EstadoDisponible,
		Observaciones:     in.Observaciones,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(dep); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(dep), nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartamentoUseCase) GetByID(id string) (*dto.DepartamentoResponse, error) {
	dep, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, domain.ErrNotFound
	}
	return toDepartamentoResponse(dep), nil
}

// List lista departamentos con filtros opcionales de tipo y estado.
func (uc *DepartamentoUseCase) List(filtro repository.FiltroDepartamentos) ([]*dto.DepartamentoResponse, error) {
	deps, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DepartamentoResponse, 0, len(deps))
	for _, dep := range deps {
		out = append(out, toDepartamentoResponse(dep))
	}
	return out, nil
}

// Actualizar modifica un departamento; el número no es editable.
func (uc *DepartamentoUseCase) Actualizar(id string, in dto.ActualizarDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	dep, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, domain.ErrNotFound
	}
	if in.Tipo != nil {
		if !entity.TipoValido(*in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		dep.Tipo = *in.Tipo
	}
	if in.Descripcion != nil {
		dep.Descripcion = *in.Descripcion
	}
	if in.PrecioNoche != nil {
		if in.PrecioNoche.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		dep.PrecioNoche = *in.PrecioNoche
	}
	if in.CapacidadPersonas != nil {
		if *in.CapacidadPersonas < 1 {
			return nil, domain.ErrInvalidInput
		}
		dep.CapacidadPersonas = *in.CapacidadPersonas
	}
	if in.NumeroCamas != nil {
		dep.NumeroCamas = *in.NumeroCamas
	}
	if in.Estado != nil {
		if !entity.EstadoDepartamentoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		dep.Estado = *in.Estado
	}
	if in.Observaciones != nil {
		dep.Observaciones = *in.Observaciones
	}
	dep.UpdatedAt = time.Now()
	if err := uc.repo.Update(dep); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(dep), nil
}

// Eliminar borra el departamento y sus imágenes del bucket (best effort).
func (uc *DepartamentoUseCase) Eliminar(ctx context.Context, id string) error {
	dep, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if dep == nil {
		return domain.ErrNotFound
	}
	if dep.Estado == entity.EstadoOcupado || dep.Estado == entity.EstadoReservado {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	for _, img := range dep.Imagenes {
		_ = uc.almacen.Eliminar(ctx, img.Clave)
	}
	return nil
}

// SubirImagen sube la foto al bucket y la agrega al departamento.
func (uc *DepartamentoUseCase) SubirImagen(ctx context.Context, id, nombreArchivo, contentType string, contenido []byte, descripcion string) (*dto.DepartamentoResponse, error) {
	if len(contenido) == 0 {
		return nil, domain.ErrInvalidInput
	}
	dep, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, domain.ErrNotFound
	}
	clave := fmt.Sprintf("departamentos/%s/%s%s", dep.ID, uuid.New().String(), path.Ext(nombreArchivo))
	url, err := uc.almacen.Subir(ctx, clave, contenido, contentType)
	if err != nil {
		return nil, err
	}
	dep.Imagenes = append(dep.Imagenes, entity.ImagenDepartamento{
		URL:         url,
		Clave:       clave,
		Descripcion: descripcion,
	})
	dep.UpdatedAt = time.Now()
	if err := uc.repo.Update(dep); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(dep), nil
}

// EliminarImagen borra la foto del bucket y la quita del departamento.
func (uc *DepartamentoUseCase) EliminarImagen(ctx context.Context, id, clave string) (*dto.DepartamentoResponse, error) {
	dep, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, domain.ErrNotFound
	}
	idx := -1
	for i, img := range dep.Imagenes {
		if img.Clave == clave {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if err := uc.almacen.Eliminar(ctx, clave); err != nil {
		return nil, err
	}
	dep.Imagenes = append(dep.Imagenes[:idx], dep.Imagenes[idx+1:]...)
	dep.UpdatedAt = time.Now()
	if err := uc.repo.Update(dep); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(dep), nil
}

func toDepartamentoResponse(d *entity.Departamento) *dto.DepartamentoResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartamentoResponse{
		ID:                d.ID,
		Numero:            d.Numero,
		Tipo:              d.Tipo,
		Descripcion:       d.Descripcion,
		Piso:              d.Piso,
		PrecioNoche:       d.PrecioNoche,
		CapacidadPersonas: d.CapacidadPersonas,
		NumeroCamas:       d.NumeroCamas,
		Imagenes:          d.Imagenes,
		Estado:            d.Estado,
		Observaciones:     d.Observaciones,
	}
}
