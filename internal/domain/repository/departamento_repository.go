package repository

import "github.com/paraisoverde/hotel-api/internal/domain/entity"

// FiltroDepartamentos criterios opcionales de listado; cadenas vacías ignoran el filtro.
type FiltroDepartamentos struct {
	Tipo   string
	Estado string
	Limit  int
	Offset int
}

// DepartamentoRepository define el puerto de persistencia para Departamento.
type DepartamentoRepository interface {
	Create(dep *entity.Departamento) error
	GetByID(id string) (*entity.Departamento, error)
	// GetByIDForUpdate carga el departamento bloqueando su fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; cierra la carrera
	// verificar-disponibilidad-luego-reservar.
	GetByIDForUpdate(id string) (*entity.Departamento, error)
	GetByNumero(numero string) (*entity.Departamento, error)
	List(filtro FiltroDepartamentos) ([]*entity.Departamento, error)
	Update(dep *entity.Departamento) error
	UpdateEstado(id, estado string) error
	Delete(id string) error
}
