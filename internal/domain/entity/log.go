package entity

import "time"

// Acciones registrables en la auditoría.
const (
	AccionCreate      = "CREATE"
	AccionRead        = "READ"
	AccionUpdate      = "UPDATE"
	AccionDelete      = "DELETE"
	AccionLogin       = "LOGIN"
	AccionLogout      = "LOGOUT"
	AccionLoginFailed = "LOGIN_FAILED"
	AccionRegister    = "REGISTER"
)

// LogAuditoria registro inmutable de una acción sobre el sistema.
// Solo se inserta y se consulta; nunca se actualiza ni se borra.
type LogAuditoria struct {
	ID           string
	UsuarioID    string // vacío para acciones anónimas (ej. login fallido)
	Accion       string
	Entidad      string
	EntidadID    string
	IP           string
	UserAgent    string
	Metodo       string
	Ruta         string
	Descripcion  string
	Detalles     map[string]any // serializado como JSONB
	Exitoso      bool
	ErrorMensaje string
	CreatedAt    time.Time
}
