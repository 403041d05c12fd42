package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	NombreUsuario   string `json:"nombreUsuario"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Cedula          string `json:"cedula"`
	FechaNacimiento string `json:"fechaNacimiento"` // formato 2006-01-02
	Telefono        string `json:"telefono,omitempty"`
	Direccion       string `json:"direccion,omitempty"`
	Nacionalidad    string `json:"nacionalidad,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Verify2FARequest segundo paso del login cuando el usuario tiene TOTP habilitado.
type Verify2FARequest struct {
	UserID string `json:"userId"`
	Codigo string `json:"token"`
}

// Confirm2FARequest confirma el secreto TOTP recién generado con un código válido.
type Confirm2FARequest struct {
	Codigo string `json:"token"`
}

// UsuarioResponse salida de un usuario (sin password ni secreto TOTP).
type UsuarioResponse struct {
	ID               string    `json:"id"`
	NombreUsuario    string    `json:"nombreUsuario"`
	Email            string    `json:"email"`
	Nombres          string    `json:"nombres"`
	Apellidos        string    `json:"apellidos"`
	Cedula           string    `json:"cedula,omitempty"`
	Telefono         string    `json:"telefono,omitempty"`
	Direccion        string    `json:"direccion,omitempty"`
	Rol              string    `json:"rol"`
	Activo           bool      `json:"activo"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	EsFrecuente      bool      `json:"esFrecuente"`
	CreatedAt        time.Time `json:"createdAt"`
}

// LoginResponse token + usuario; si RequiereTwoFactor es true el token va
// vacío y el cliente debe llamar a /auth/verify-2fa.
type LoginResponse struct {
	Token             string           `json:"token,omitempty"`
	Usuario           *UsuarioResponse `json:"usuario,omitempty"`
	RequiereTwoFactor bool             `json:"requiresTwoFactor,omitempty"`
	UserID            string           `json:"userId,omitempty"`
}

// TwoFactorSetupResponse secreto y URL otpauth para inscribir la app de autenticación.
type TwoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauthUrl"`
}
