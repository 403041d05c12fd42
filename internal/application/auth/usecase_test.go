package auth

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

type mockUsuarioRepo struct {
	createFn          func(u *entity.Usuario) error
	getByIDFn         func(id string) (*entity.Usuario, error)
	findByEmailFn     func(email string) (*entity.Usuario, error)
	existeFn          func(email, nombreUsuario, cedula string) (bool, error)
	updateTwoFactorFn func(id, secret string, enabled bool) error
}

var _ repository.UsuarioRepository = (*mockUsuarioRepo)(nil)

func (m *mockUsuarioRepo) Create(u *entity.Usuario) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(u)
}

func (m *mockUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	if m.getByIDFn == nil {
		return nil, nil
	}
	return m.getByIDFn(id)
}

func (m *mockUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(email)
}

func (m *mockUsuarioRepo) ExisteCredencial(email, nombreUsuario, cedula string) (bool, error) {
	if m.existeFn == nil {
		return false, nil
	}
	return m.existeFn(email, nombreUsuario, cedula)
}

func (m *mockUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) { return nil, nil }
func (m *mockUsuarioRepo) Update(u *entity.Usuario) error                    { return nil }

func (m *mockUsuarioRepo) UpdateTwoFactor(id, secret string, enabled bool) error {
	if m.updateTwoFactorFn == nil {
		return nil
	}
	return m.updateTwoFactorFn(id, secret, enabled)
}

func (m *mockUsuarioRepo) IncrementarReservas(id string) error { return nil }
func (m *mockUsuarioRepo) Delete(id string) error              { return nil }

var testJWT = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "hotel-test"}

func registroValido() dto.RegisterRequest {
	return dto.RegisterRequest{
		NombreUsuario:   "mgonzalez",
		Email:           "maria@example.com",
		Password:        "secreto123",
		Nombres:         "María",
		Apellidos:       "González",
		Cedula:          "1712345678",
		FechaNacimiento: "1990-05-20",
	}
}

func usuarioConPassword(t *testing.T, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:              "u-1",
		NombreUsuario:   "mgonzalez",
		Email:           "maria@example.com",
		PasswordHash:    string(hash),
		Rol:             entity.RolCliente,
		Activo:          true,
		FechaNacimiento: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister_Exitoso(t *testing.T) {
	var creado *entity.Usuario
	repo := &mockUsuarioRepo{
		createFn: func(u *entity.Usuario) error {
			creado = u
			return nil
		},
	}
	uc := NewAuthUseCase(repo, testJWT)

	resp, err := uc.Register(registroValido())
	require.NoError(t, err)
	require.NotNil(t, creado)

	assert.Equal(t, entity.RolCliente, creado.Rol, "los registros públicos siempre son clientes")
	assert.True(t, creado.Activo)
	assert.NotEmpty(t, creado.ID)
	assert.NotEqual(t, "secreto123", creado.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(creado.PasswordHash), []byte("secreto123")))
	assert.Equal(t, "maria@example.com", resp.Email)
}

func TestRegister_CredencialDuplicada(t *testing.T) {
	repo := &mockUsuarioRepo{
		existeFn: func(email, nombreUsuario, cedula string) (bool, error) { return true, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(registroValido())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_MenorDeEdad(t *testing.T) {
	uc := NewAuthUseCase(&mockUsuarioRepo{}, testJWT)

	in := registroValido()
	in.FechaNacimiento = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrMenorDeEdad)
}

func TestRegister_CamposFaltantes(t *testing.T) {
	uc := NewAuthUseCase(&mockUsuarioRepo{}, testJWT)

	in := registroValido()
	in.Email = ""
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Exitoso(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	repo := &mockUsuarioRepo{
		findByEmailFn: func(email string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	resp, err := uc.Login(dto.LoginRequest{Email: usuario.Email, Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.RequiereTwoFactor)
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, "u-1", resp.Usuario.ID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	repo := &mockUsuarioRepo{
		findByEmailFn: func(email string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: usuario.Email, Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewAuthUseCase(&mockUsuarioRepo{}, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "no se distingue usuario inexistente de password incorrecto")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.Activo = false
	repo := &mockUsuarioRepo{
		findByEmailFn: func(email string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: usuario.Email, Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_Con2FANoEmiteToken(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.TwoFactorEnabled = true
	usuario.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	repo := &mockUsuarioRepo{
		findByEmailFn: func(email string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	resp, err := uc.Login(dto.LoginRequest{Email: usuario.Email, Password: "secreto123"})
	require.NoError(t, err)
	assert.True(t, resp.RequiereTwoFactor)
	assert.Empty(t, resp.Token, "el token se emite recién tras verificar el TOTP")
	assert.Equal(t, "u-1", resp.UserID)
}

func TestVerify2FA_CodigoValido(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.TwoFactorEnabled = true
	usuario.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	codigo, err := totp.GenerateCode(usuario.TwoFactorSecret, time.Now())
	require.NoError(t, err)

	resp, err := uc.Verify2FA(dto.Verify2FARequest{UserID: "u-1", Codigo: codigo})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestVerify2FA_CodigoInvalido(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.TwoFactorEnabled = true
	usuario.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Verify2FA(dto.Verify2FARequest{UserID: "u-1", Codigo: "000000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnable2FA_GuardaSecretoSinHabilitar(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	var guardadoSecret string
	var guardadoEnabled bool
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
		updateTwoFactorFn: func(id, secret string, enabled bool) error {
			guardadoSecret = secret
			guardadoEnabled = enabled
			return nil
		},
	}
	uc := NewAuthUseCase(repo, testJWT)

	resp, err := uc.Enable2FA("u-1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Secret)
	assert.Contains(t, resp.OtpauthURL, "otpauth://totp/")
	assert.Equal(t, resp.Secret, guardadoSecret)
	assert.False(t, guardadoEnabled, "el 2FA se habilita recién en Confirm2FA")
}

func TestConfirm2FA_HabilitaConCodigoValido(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	var habilitado bool
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
		updateTwoFactorFn: func(id, secret string, enabled bool) error {
			habilitado = enabled
			return nil
		},
	}
	uc := NewAuthUseCase(repo, testJWT)

	codigo, err := totp.GenerateCode(usuario.TwoFactorSecret, time.Now())
	require.NoError(t, err)

	require.NoError(t, uc.Confirm2FA("u-1", dto.Confirm2FARequest{Codigo: codigo}))
	assert.True(t, habilitado)
}

func TestConfirm2FA_SinSecretoPendiente(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	err := uc.Confirm2FA("u-1", dto.Confirm2FARequest{Codigo: "123456"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDisable2FA_ExigeCodigoVigente(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	usuario.TwoFactorEnabled = true
	usuario.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	repo := &mockUsuarioRepo{
		getByIDFn: func(id string) (*entity.Usuario, error) { return usuario, nil },
	}
	uc := NewAuthUseCase(repo, testJWT)

	err := uc.Disable2FA("u-1", dto.Confirm2FARequest{Codigo: "000000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
