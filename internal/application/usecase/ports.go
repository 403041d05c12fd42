package usecase

import "context"

// AlmacenImagenes puerto hacia el bucket de objetos donde viven las fotos de
// los departamentos. Subir devuelve la URL pública; Eliminar recibe la clave
// opaca devuelta al subir.
type AlmacenImagenes interface {
	Subir(ctx context.Context, clave string, contenido []byte, contentType string) (url string, err error)
	Eliminar(ctx context.Context, clave string) error
}
