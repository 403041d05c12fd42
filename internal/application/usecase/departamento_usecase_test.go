package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

type mockDepRepo struct {
	createFn      func(dep *entity.Departamento) error
	getByIDFn     func(id string) (*entity.Departamento, error)
	getByNumeroFn func(numero string) (*entity.Departamento, error)
	updateFn      func(dep *entity.Departamento) error
	deleteFn      func(id string) error
}

var _ repository.DepartamentoRepository = (*mockDepRepo)(nil)

func (m *mockDepRepo) Create(dep *entity.Departamento) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(dep)
}

func (m *mockDepRepo) GetByID(id string) (*entity.Departamento, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockDepRepo) GetByIDForUpdate(id string) (*entity.Departamento, error) {
	return m.GetByID(id)
}

func (m *mockDepRepo) GetByNumero(numero string) (*entity.Departamento, error) {
	if m.getByNumeroFn == nil {
		return nil, nil
	}
	return m.getByNumeroFn(numero)
}

func (m *mockDepRepo) List(f repository.FiltroDepartamentos) ([]*entity.Departamento, error) {
	return nil, nil
}

func (m *mockDepRepo) Update(dep *entity.Departamento) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(dep)
}

func (m *mockDepRepo) UpdateEstado(id, estado string) error { return nil }

func (m *mockDepRepo) Delete(id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(id)
}

type mockAlmacen struct {
	subirFn    func(ctx context.Context, clave string, contenido []byte, contentType string) (string, error)
	eliminarFn func(ctx context.Context, clave string) error
}

var _ AlmacenImagenes = (*mockAlmacen)(nil)

func (m *mockAlmacen) Subir(ctx context.Context, clave string, contenido []byte, contentType string) (string, error) {
	if m.subirFn == nil {
		return "https://bucket.example.com/" + clave, nil
	}
	return m.subirFn(ctx, clave, contenido, contentType)
}

func (m *mockAlmacen) Eliminar(ctx context.Context, clave string) error {
	if m.eliminarFn == nil {
		return nil
	}
	return m.eliminarFn(ctx, clave)
}

func TestCrearDepartamento_Exitoso(t *testing.T) {
	var creado *entity.Departamento
	uc := NewDepartamentoUseCase(&mockDepRepo{
		createFn: func(dep *entity.Departamento) error { creado = dep; return nil },
	}, &mockAlmacen{})

	resp, err := uc.Crear(dto.CrearDepartamentoRequest{
		Numero:            "301",
		Tipo:              entity.TipoSuite,
		Piso:              3,
		PrecioNoche:       decimal.RequireFromString("180"),
		CapacidadPersonas: 4,
		NumeroCamas:       2,
	})
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.Equal(t, entity.EstadoDisponible, creado.Estado, "los departamentos nacen disponibles")
	assert.Equal(t, "301", resp.Numero)
}

func TestCrearDepartamento_NumeroDuplicado(t *testing.T) {
	uc := NewDepartamentoUseCase(&mockDepRepo{
		getByNumeroFn: func(numero string) (*entity.Departamento, error) {
			return &entity.Departamento{ID: "d-1", Numero: numero}, nil
		},
	}, &mockAlmacen{})

	_, err := uc.Crear(dto.CrearDepartamentoRequest{
		Numero:            "301",
		Tipo:              entity.TipoDoble,
		PrecioNoche:       decimal.RequireFromString("90"),
		CapacidadPersonas: 2,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCrearDepartamento_TipoInvalido(t *testing.T) {
	uc := NewDepartamentoUseCase(&mockDepRepo{}, &mockAlmacen{})

	_, err := uc.Crear(dto.CrearDepartamentoRequest{
		Numero:            "301",
		Tipo:              "penthouse",
		PrecioNoche:       decimal.RequireFromString("90"),
		CapacidadPersonas: 2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarDepartamento_EstadoInvalido(t *testing.T) {
	uc := NewDepartamentoUseCase(&mockDepRepo{
		getByIDFn: func(id string) (*entity.Departamento, error) {
			return &entity.Departamento{ID: id, Estado: entity.EstadoDisponible}, nil
		},
	}, &mockAlmacen{})

	estado := "en-limpieza"
	_, err := uc.Actualizar("d-1", dto.ActualizarDepartamentoRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEliminarDepartamento_OcupadoRechazado(t *testing.T) {
	uc := NewDepartamentoUseCase(&mockDepRepo{
		getByIDFn: func(id string) (*entity.Departamento, error) {
			return &entity.Departamento{ID: id, Estado: entity.EstadoOcupado}, nil
		},
	}, &mockAlmacen{})

	err := uc.Eliminar(context.Background(), "d-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubirImagen_AgregaAlDepartamento(t *testing.T) {
	dep := &entity.Departamento{ID: "d-1", Estado: entity.EstadoDisponible}
	var guardado *entity.Departamento
	uc := NewDepartamentoUseCase(&mockDepRepo{
		getByIDFn: func(id string) (*entity.Departamento, error) { return dep, nil },
		updateFn:  func(d *entity.Departamento) error { guardado = d; return nil },
	}, &mockAlmacen{})

	resp, err := uc.SubirImagen(context.Background(), "d-1", "frente.jpg", "image/jpeg", []byte{0xFF, 0xD8}, "vista al mar")
	require.NoError(t, err)
	require.NotNil(t, guardado)
	require.Len(t, resp.Imagenes, 1)
	assert.Contains(t, resp.Imagenes[0].Clave, "departamentos/d-1/")
	assert.Contains(t, resp.Imagenes[0].URL, "https://")
	assert.Equal(t, "vista al mar", resp.Imagenes[0].Descripcion)
}

func TestEliminarImagen_ClaveInexistente(t *testing.T) {
	dep := &entity.Departamento{
		ID:       "d-1",
		Imagenes: []entity.ImagenDepartamento{{Clave: "departamentos/d-1/a.jpg"}},
	}
	uc := NewDepartamentoUseCase(&mockDepRepo{
		getByIDFn: func(id string) (*entity.Departamento, error) { return dep, nil },
	}, &mockAlmacen{})

	_, err := uc.EliminarImagen(context.Background(), "d-1", "departamentos/d-1/z.jpg")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
