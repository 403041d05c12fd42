package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/paraisoverde/hotel-api/pkg/jwt"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
// Issuer se reutiliza como emisor en las URLs otpauth del segundo factor.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y segundo factor TOTP.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta con rol cliente: valida datos, hashea el password
// con bcrypt y persiste. Devuelve ErrDuplicate si email, nombre de usuario o
// cédula ya están registrados y ErrMenorDeEdad si el solicitante tiene menos de 18 años.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.NombreUsuario == "" || in.Email == "" || in.Password == "" ||
		in.Nombres == "" || in.Apellidos == "" || in.Cedula == "" {
		return nil, domain.ErrInvalidInput
	}
	fechaNacimiento, err := time.Parse("2006-01-02", in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if entity.Edad(fechaNacimiento, time.Now()) < entity.EdadMinimaReserva {
		return nil, domain.ErrMenorDeEdad
	}
	existe, err := uc.usuarioRepo.ExisteCredencial(in.Email, in.NombreUsuario, in.Cedula)
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
		Rol:             entity.RolCliente,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica credenciales. Si el usuario tiene 2FA habilitado NO emite
// token: responde requiresTwoFactor=true y el cliente debe llamar a Verify2FA.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	if usuario.TwoFactorEnabled {
		return &dto.LoginResponse{RequiereTwoFactor: true, UserID: usuario.ID}, nil
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: toUsuarioResponse(usuario)}, nil
}

// Verify2FA segundo paso del login: valida el código TOTP y emite el token.
func (uc *AuthUseCase) Verify2FA(in dto.Verify2FARequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if !usuario.TwoFactorEnabled || usuario.TwoFactorSecret == "" {
		return nil, domain.ErrConflict
	}
	if !totp.Validate(in.Codigo, usuario.TwoFactorSecret) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: toUsuarioResponse(usuario)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUsuarioResponse(usuario), nil
}

// Enable2FA genera un secreto TOTP nuevo y lo guarda SIN habilitar; el 2FA
// queda activo recién cuando Confirm2FA valida un código generado con ese secreto.
func (uc *AuthUseCase) Enable2FA(userID string) (*dto.TwoFactorSetupResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	if usuario.TwoFactorEnabled {
		return nil, domain.ErrConflict
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      uc.jwtCfg.Issuer,
		AccountName: usuario.Email,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.usuarioRepo.UpdateTwoFactor(usuario.ID, key.Secret(), false); err != nil {
		return nil, err
	}
	return &dto.TwoFactorSetupResponse{Secret: key.Secret(), OtpauthURL: key.URL()}, nil
}

// Confirm2FA valida el primer código contra el secreto pendiente y habilita el 2FA.
func (uc *AuthUseCase) Confirm2FA(userID string, in dto.Confirm2FARequest) error {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	if usuario.TwoFactorSecret == "" {
		return domain.ErrConflict // primero llamar a Enable2FA
	}
	if !totp.Validate(in.Codigo, usuario.TwoFactorSecret) {
		return domain.ErrUnauthorized
	}
	return uc.usuarioRepo.UpdateTwoFactor(usuario.ID, usuario.TwoFactorSecret, true)
}

// Disable2FA apaga el segundo factor; exige un código TOTP vigente.
func (uc *AuthUseCase) Disable2FA(userID string, in dto.Confirm2FARequest) error {
	usuario, err := uc.usuarioRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	if !usuario.TwoFactorEnabled {
		return domain.ErrConflict
	}
	if !totp.Validate(in.Codigo, usuario.TwoFactorSecret) {
		return domain.ErrUnauthorized
	}
	return uc.usuarioRepo.UpdateTwoFactor(usuario.ID, "", false)
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
