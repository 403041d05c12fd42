package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paraisoverde/hotel-api/internal/application/audit"
	"github.com/paraisoverde/hotel-api/internal/application/auth"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
)

// AuthHandler maneja registro, login y el segundo factor TOTP.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	audit *audit.LogUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, auditUC *audit.LogUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, audit: auditUC}
}

// Register registra una cuenta nueva con rol cliente.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("password debe tener al menos 8 caracteres"))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return responderError(c, err)
	}
	h.audit.Registrar(audit.Entrada{
		UsuarioID: out.ID,
		Accion:    entity.AccionRegister,
		Entidad:   "usuarios",
		EntidadID: out.ID,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Exitoso:   true,
	})
	return c.Status(fiber.StatusCreated).JSON(dto.OKMensaje("usuario registrado", out))
}

// Login autentica con email y password. Si la cuenta tiene 2FA habilitado
// devuelve requiresTwoFactor en lugar del token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		h.audit.Registrar(audit.Entrada{
			Accion:       entity.AccionLoginFailed,
			Entidad:      "usuarios",
			Descripcion:  "login fallido para " + in.Email,
			IP:           c.IP(),
			UserAgent:    c.Get("User-Agent"),
			Exitoso:      false,
			ErrorMensaje: err.Error(),
		})
		return responderError(c, err)
	}
	if !out.RequiereTwoFactor {
		h.audit.Registrar(audit.Entrada{
			UsuarioID: out.Usuario.ID,
			Accion:    entity.AccionLogin,
			Entidad:   "usuarios",
			EntidadID: out.Usuario.ID,
			IP:        c.IP(),
			UserAgent: c.Get("User-Agent"),
			Exitoso:   true,
		})
	}
	return c.JSON(dto.OK(out))
}

// Verify2FA segundo paso del login: valida el código TOTP y emite el token.
func (h *AuthHandler) Verify2FA(c *fiber.Ctx) error {
	var in dto.Verify2FARequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Verify2FA(in)
	if err != nil {
		return responderError(c, err)
	}
	h.audit.Registrar(audit.Entrada{
		UsuarioID:   out.Usuario.ID,
		Accion:      entity.AccionLogin,
		Entidad:     "usuarios",
		EntidadID:   out.Usuario.ID,
		IP:          c.IP(),
		UserAgent:   c.Get("User-Agent"),
		Descripcion: "login con segundo factor",
		Exitoso:     true,
	})
	return c.JSON(dto.OK(out))
}

// Me devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Enable2FA genera el secreto TOTP y la URL otpauth para inscribirlo.
func (h *AuthHandler) Enable2FA(c *fiber.Ctx) error {
	out, err := h.uc.Enable2FA(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("confirme el secreto con un código para activar 2FA", out))
}

// Confirm2FA activa el 2FA validando un código del secreto recién generado.
func (h *AuthHandler) Confirm2FA(c *fiber.Ctx) error {
	var in dto.Confirm2FARequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.Confirm2FA(GetUserID(c), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("autenticación de dos factores habilitada", nil))
}

// Disable2FA desactiva el 2FA; exige un código TOTP vigente.
func (h *AuthHandler) Disable2FA(c *fiber.Ctx) error {
	var in dto.Confirm2FARequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := h.uc.Disable2FA(GetUserID(c), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.OKMensaje("autenticación de dos factores deshabilitada", nil))
}
