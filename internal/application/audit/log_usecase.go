package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/paraisoverde/hotel-api/pkg/logger"
)

// Entrada datos de una acción a auditar.
type Entrada struct {
	UsuarioID    string
	Accion       string
	Entidad      string
	EntidadID    string
	IP           string
	UserAgent    string
	Metodo       string
	Ruta         string
	Descripcion  string
	Detalles     map[string]any
	Exitoso      bool
	ErrorMensaje string
}

// LogUseCase escribe y consulta la auditoría. La escritura es best effort:
// un fallo al persistir el registro no debe tumbar la petición auditada.
type LogUseCase struct {
	repo repository.LogRepository
	log  *logger.Logger
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository, log *logger.Logger) *LogUseCase {
	return &LogUseCase{repo: repo, log: log}
}

// Registrar persiste una entrada de auditoría.
func (uc *LogUseCase) Registrar(in Entrada) {
	if in.Accion == "" {
		return
	}
	entrada := &entity.LogAuditoria{
		ID:           uuid.New().String(),
		UsuarioID:    in.UsuarioID,
		Accion:       in.Accion,
		Entidad:      in.Entidad,
		EntidadID:    in.EntidadID,
		IP:           in.IP,
		UserAgent:    in.UserAgent,
		Metodo:       in.Metodo,
		Ruta:         in.Ruta,
		Descripcion:  in.Descripcion,
		Detalles:     in.Detalles,
		Exitoso:      in.Exitoso,
		ErrorMensaje: in.ErrorMensaje,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(entrada); err != nil {
		uc.log.Error().Err(err).
			Str("accion", in.Accion).
			Str("ruta", in.Ruta).
			Msg("no se pudo escribir el registro de auditoría")
	}
}

// List consulta la auditoría con filtros opcionales.
func (uc *LogUseCase) List(filtro repository.FiltroLogs) ([]*dto.LogResponse, error) {
	logs, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.LogResponse{
			ID:           l.ID,
			UsuarioID:    l.UsuarioID,
			Accion:       l.Accion,
			Entidad:      l.Entidad,
			EntidadID:    l.EntidadID,
			IP:           l.IP,
			UserAgent:    l.UserAgent,
			Metodo:       l.Metodo,
			Ruta:         l.Ruta,
			Descripcion:  l.Descripcion,
			Detalles:     l.Detalles,
			Exitoso:      l.Exitoso,
			ErrorMensaje: l.ErrorMensaje,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out, nil
}
