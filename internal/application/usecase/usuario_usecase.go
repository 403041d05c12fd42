package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase administración de cuentas (solo admin). El registro público
// de clientes vive en el paquete auth.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Crear registra una cuenta con rol arbitrario.
func (uc *UsuarioUseCase) Crear(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.NombreUsuario == "" || in.Email == "" || in.Password == "" || in.Cedula == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolCliente
	}
	if rol != entity.RolCliente && rol != entity.RolAdmin {
		return nil, domain.ErrInvalidInput
	}
	fechaNacimiento, err := time.Parse("2006-01-02", in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existe, err := uc.repo.ExisteCredencial(in.Email, in.NombreUsuario, in.Cedula)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:              uuid.New().String(),
		NombreUsuario:   in.NombreUsuario,
		Email:           in.Email,
		PasswordHash:    string(hash),
		Nombres:         in.Nombres,
		Apellidos:       in.Apellidos,
		Cedula:          in.Cedula,
		FechaNacimiento: fechaNacimiento,
		Telefono:        in.Telefono,
		Direccion:       in.Direccion,
		Rol:             rol,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUsuarioResponse(usuario), nil
}

// List lista cuentas con paginación.
func (uc *UsuarioUseCase) List(limit, offset int) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// Actualizar modifica perfil, rol o estado de una cuenta.
func (uc *UsuarioUseCase) Actualizar(id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Nombres != nil {
		usuario.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		usuario.Apellidos = *in.Apellidos
	}
	if in.Telefono != nil {
		usuario.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		usuario.Direccion = *in.Direccion
	}
	if in.Rol != nil {
		if *in.Rol != entity.RolCliente && *in.Rol != entity.RolAdmin {
			return nil, domain.ErrInvalidInput
		}
		usuario.Rol = *in.Rol
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Eliminar desactiva y borra una cuenta.
func (uc *UsuarioUseCase) Eliminar(id string) error {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:               u.ID,
		NombreUsuario:    u.NombreUsuario,
		Email:            u.Email,
		Nombres:          u.Nombres,
		Apellidos:        u.Apellidos,
		Cedula:           u.Cedula,
		Telefono:         u.Telefono,
		Direccion:        u.Direccion,
		Rol:              u.Rol,
		Activo:           u.Activo,
		TwoFactorEnabled: u.TwoFactorEnabled,
		EsFrecuente:      u.EsFrecuente,
		CreatedAt:        u.CreatedAt,
	}
}
