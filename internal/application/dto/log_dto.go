package dto

import "time"

// LogResponse registro de auditoría en respuestas (solo admin).
type LogResponse struct {
	ID           string         `json:"id"`
	UsuarioID    string         `json:"usuarioId,omitempty"`
	Accion       string         `json:"accion"`
	Entidad      string         `json:"entidad"`
	EntidadID    string         `json:"entidadId,omitempty"`
	IP           string         `json:"ip,omitempty"`
	UserAgent    string         `json:"userAgent,omitempty"`
	Metodo       string         `json:"metodo"`
	Ruta         string         `json:"ruta"`
	Descripcion  string         `json:"descripcion,omitempty"`
	Detalles     map[string]any `json:"detalles,omitempty"`
	Exitoso      bool           `json:"exitoso"`
	ErrorMensaje string         `json:"errorMensaje,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
