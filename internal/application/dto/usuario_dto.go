package dto

// CrearUsuarioRequest body para POST /api/usuarios (solo admin): un registro
// normal más el rol a asignar.
type CrearUsuarioRequest struct {
	RegisterRequest
	Rol string `json:"rol"`
}

// ActualizarUsuarioRequest body para PUT /api/usuarios/:id.
type ActualizarUsuarioRequest struct {
	Nombres   *string `json:"nombres,omitempty"`
	Apellidos *string `json:"apellidos,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Rol       *string `json:"rol,omitempty"`
	Activo    *bool   `json:"activo,omitempty"`
}
