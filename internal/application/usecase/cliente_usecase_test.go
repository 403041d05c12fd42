package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

type mockClienteRepo struct {
	createFn      func(c *entity.Cliente) error
	getByIDFn     func(id string) (*entity.Cliente, error)
	getByCedulaFn func(cedula string) (*entity.Cliente, error)
	deleteFn      func(id string) error
}

var _ repository.ClienteRepository = (*mockClienteRepo)(nil)

func (m *mockClienteRepo) Create(c *entity.Cliente) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(c)
}

func (m *mockClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockClienteRepo) GetByCedula(cedula string) (*entity.Cliente, error) {
	if m.getByCedulaFn == nil {
		return nil, nil
	}
	return m.getByCedulaFn(cedula)
}

func (m *mockClienteRepo) GetByUsuario(usuarioID string) (*entity.Cliente, error) { return nil, nil }
func (m *mockClienteRepo) List(limit, offset int) ([]*entity.Cliente, error)      { return nil, nil }
func (m *mockClienteRepo) Update(c *entity.Cliente) error                         { return nil }
func (m *mockClienteRepo) IncrementarReservas(id string) error                    { return nil }

func (m *mockClienteRepo) Delete(id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(id)
}

func TestCrearCliente_Exitoso(t *testing.T) {
	var creado *entity.Cliente
	uc := NewClienteUseCase(&mockClienteRepo{
		createFn: func(c *entity.Cliente) error { creado = c; return nil },
	})

	resp, err := uc.Crear(dto.CrearClienteRequest{
		Nombres:         "Carlos",
		Apellidos:       "Mendoza",
		Cedula:          "0912345678",
		FechaNacimiento: "1958-03-11",
		Email:           "carlos@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.False(t, creado.EsFrecuente)
	assert.GreaterOrEqual(t, resp.Edad, 65, "nacido en 1958 ya es tercera edad")
}

func TestCrearCliente_CedulaDuplicada(t *testing.T) {
	uc := NewClienteUseCase(&mockClienteRepo{
		getByCedulaFn: func(cedula string) (*entity.Cliente, error) {
			return &entity.Cliente{ID: "c-1", Cedula: cedula}, nil
		},
	})

	_, err := uc.Crear(dto.CrearClienteRequest{
		Nombres:         "Carlos",
		Apellidos:       "Mendoza",
		Cedula:          "0912345678",
		FechaNacimiento: "1958-03-11",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCrearCliente_FechaInvalida(t *testing.T) {
	uc := NewClienteUseCase(&mockClienteRepo{})

	_, err := uc.Crear(dto.CrearClienteRequest{
		Nombres:         "Carlos",
		Apellidos:       "Mendoza",
		Cedula:          "0912345678",
		FechaNacimiento: "11/03/1958",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEliminarCliente_ConReservasRechazado(t *testing.T) {
	uc := NewClienteUseCase(&mockClienteRepo{
		getByIDFn: func(id string) (*entity.Cliente, error) {
			return &entity.Cliente{ID: id, ReservasRealizadas: 3, FechaNacimiento: time.Now().AddDate(-30, 0, 0)}, nil
		},
	})

	err := uc.Eliminar("c-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
