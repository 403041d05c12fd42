package dto

// Respuesta envolvente estándar de la API: {success, message?, data?, error?}.
type Respuesta struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data any) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKMensaje construye una respuesta exitosa con mensaje y datos.
func OKMensaje(message string, data any) Respuesta {
	return Respuesta{Success: true, Message: message, Data: data}
}

// OKLista construye una respuesta exitosa de listado con contador.
func OKLista(data any, count int) Respuesta {
	return Respuesta{Success: true, Data: data, Count: count}
}

// Fallo construye una respuesta de error con mensaje.
func Fallo(message string) Respuesta {
	return Respuesta{Success: false, Message: message}
}

// FalloDetalle construye una respuesta de error con mensaje y detalle técnico.
func FalloDetalle(message, detalle string) Respuesta {
	return Respuesta{Success: false, Message: message, Error: detalle}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
