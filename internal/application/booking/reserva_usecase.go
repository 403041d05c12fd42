package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paraisoverde/hotel-api/internal/application/dto"
	"github.com/paraisoverde/hotel-api/internal/domain"
	domainbooking "github.com/paraisoverde/hotel-api/internal/domain/booking"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/pricing"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
	"github.com/paraisoverde/hotel-api/pkg/logger"
)

// ReservaUseCase orquesta el ciclo de vida de las reservas: creación con
// verificación de disponibilidad y cálculo de precios, check-in, check-out
// y cancelación.
type ReservaUseCase struct {
	txRunner    ReservaTxRunner
	reservaRepo repository.ReservaRepository
	depRepo     repository.DepartamentoRepository
	clienteRepo repository.ClienteRepository
	facturador  Facturador
	tarifas     pricing.Tarifas
	log         *logger.Logger
}

// NewReservaUseCase construye el caso de uso.
func NewReservaUseCase(
	txRunner ReservaTxRunner,
	reservaRepo repository.ReservaRepository,
	depRepo repository.DepartamentoRepository,
	clienteRepo repository.ClienteRepository,
	facturador Facturador,
	tarifas pricing.Tarifas,
	log *logger.Logger,
) *ReservaUseCase {
	return &ReservaUseCase{
		txRunner:    txRunner,
		reservaRepo: reservaRepo,
		depRepo:     depRepo,
		clienteRepo: clienteRepo,
		facturador:  facturador,
		tarifas:     tarifas,
		log:         log,
	}
}

// Crear registra una reserva nueva. Dentro de una sola transacción: resuelve
// el cliente, bloquea la fila del departamento, verifica capacidad y
// solapamiento de fechas, calcula el desglose de precios con las banderas del
// cliente, inserta la reserva en estado confirmada, pasa el departamento a
// reservado y actualiza los contadores de reservas del cliente y su usuario.
// Tras el commit intenta generar la factura; si eso falla la reserva queda
// igual creada y el fallo solo se registra en el log.
func (uc *ReservaUseCase) Crear(ctx context.Context, usuarioID string, in dto.CrearReservaRequest) (*dto.ReservaCreadaResponse, error) {
	if in.DepartamentoID == "" || in.NumeroHuespedes < 1 {
		return nil, domain.ErrInvalidInput
	}
	inicio, fin, err := parseRango(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	hoy := truncarDia(time.Now().UTC())
	if inicio.Before(hoy) {
		return nil, domain.ErrFechasInvalidas
	}

	var reserva *entity.Reserva
	err = uc.txRunner.RunReserva(ctx, func(
		depRepo repository.DepartamentoRepository,
		reservaRepo repository.ReservaRepository,
		clienteRepo repository.ClienteRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		cliente, err := uc.resolverCliente(clienteRepo, usuarioRepo, usuarioID, in)
		if err != nil {
			return err
		}
		if cliente.EsMenorDeEdad() {
			return domain.ErrMenorDeEdad
		}

		// El lock de fila serializa reservas concurrentes sobre el mismo departamento.
		dep, err := depRepo.GetByIDForUpdate(in.DepartamentoID)
		if err != nil {
			return err
		}
		if dep == nil {
			return domain.ErrNotFound
		}
		if in.NumeroHuespedes > dep.CapacidadPersonas {
			return domain.ErrCapacidadExcedida
		}
		existentes, err := reservaRepo.ListActivasPorDepartamento(dep.ID)
		if err != nil {
			return err
		}
		if !domainbooking.Disponible(dep, existentes, inicio, fin) {
			return domain.ErrNoDisponible
		}

		noches := entity.Noches(inicio, fin)
		desglose := pricing.Calcular(uc.tarifas, pricing.Estadia{
			PrecioNoche: dep.PrecioNoche,
			Noches:      noches,
			TerceraEdad: cliente.EsTerceraEdad(),
			Frecuente:   cliente.EsFrecuente,
			Feriado:     in.EsFeriado,
		})

		now := time.Now()
		reserva = &entity.Reserva{
			ID:                    uuid.New().String(),
			CodigoReserva:         nuevoCodigoReserva(),
			UsuarioID:             usuarioID,
			ClienteID:             cliente.ID,
			DepartamentoID:        dep.ID,
			FechaInicio:           inicio,
			FechaFin:              fin,
			NumeroNoches:          noches,
			NumeroHuespedes:       in.NumeroHuespedes,
			PrecioNoche:           dep.PrecioNoche,
			Subtotal:              desglose.Subtotal.Round(2),
			Descuento:             desglose.Descuento.Round(2),
			EsFeriado:             in.EsFeriado,
			IVA:                   desglose.IVA.Round(2),
			RecargoFeriado:        desglose.Recargo.Round(2),
			Total:                 desglose.Total.Round(2),
			Estado:                entity.ReservaConfirmada,
			SolicitudesEspeciales: in.SolicitudesEspeciales,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := reservaRepo.Create(reserva); err != nil {
			return err
		}
		if err := depRepo.UpdateEstado(dep.ID, entity.EstadoReservado); err != nil {
			return err
		}
		if err := clienteRepo.IncrementarReservas(cliente.ID); err != nil {
			return err
		}
		if cliente.UsuarioAsociado != "" {
			if err := usuarioRepo.IncrementarReservas(cliente.UsuarioAsociado); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ReservaCreadaResponse{Reserva: toReservaResponse(reserva)}
	if factura, err := uc.facturador.CrearDesdeReserva(reserva.ID); err != nil {
		uc.log.Warn().Err(err).
			Str("reserva_id", reserva.ID).
			Msg("no se pudo generar la factura automática de la reserva")
	} else {
		resp.Factura = &dto.FacturaResumen{
			ID:            factura.ID,
			NumeroFactura: factura.NumeroFactura,
			Total:         factura.Total,
			EstadoPago:    factura.EstadoPago,
		}
	}
	return resp, nil
}

// resolverCliente determina el huésped facturable de la reserva: por ID
// explícito, por el payload clienteNuevo (reusando la cédula si ya existe),
// o el cliente asociado al usuario logueado, creándolo desde la cuenta si
// todavía no existe.
func (uc *ReservaUseCase) resolverCliente(
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	usuarioID string,
	in dto.CrearReservaRequest,
) (*entity.Cliente, error) {
	if in.ClienteID != "" {
		cliente, err := clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
		return cliente, nil
	}

	if in.ClienteNuevo != nil {
		existente, err := clienteRepo.GetByCedula(in.ClienteNuevo.Cedula)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return existente, nil
		}
		fechaNacimiento, err := time.Parse("2006-01-02", in.ClienteNuevo.FechaNacimiento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		now := time.Now()
		cliente := &entity.Cliente{
			ID:              uuid.New().String(),
			Nombres:         in.ClienteNuevo.Nombres,
			Apellidos:       in.ClienteNuevo.Apellidos,
			Cedula:          in.ClienteNuevo.Cedula,
			FechaNacimiento: fechaNacimiento,
			Email:           in.ClienteNuevo.Email,
			Telefono:        in.ClienteNuevo.Telefono,
			Direccion:       in.ClienteNuevo.Direccion,
			Nacionalidad:    in.ClienteNuevo.Nacionalidad,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := clienteRepo.Create(cliente); err != nil {
			return nil, err
		}
		return cliente, nil
	}

	cliente, err := clienteRepo.GetByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		return cliente, nil
	}
	usuario, err := usuarioRepo.GetByID(usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	cliente = &entity.Cliente{
		ID:              uuid.New().String(),
		Nombres:         usuario.Nombres,
		Apellidos:       usuario.Apellidos,
		Cedula:          usuario.Cedula,
		FechaNacimiento: usuario.FechaNacimiento,
		Email:           usuario.Email,
		Telefono:        usuario.Telefono,
		Direccion:       usuario.Direccion,
		UsuarioAsociado: usuario.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// CheckIn pasa la reserva de confirmada a en-curso y ocupa el departamento.
func (uc *ReservaUseCase) CheckIn(ctx context.Context, reservaID, staffID string) (*dto.ReservaResponse, error) {
	var reserva *entity.Reserva
	err := uc.txRunner.RunReserva(ctx, func(
		depRepo repository.DepartamentoRepository,
		reservaRepo repository.ReservaRepository,
		_ repository.ClienteRepository,
		_ repository.UsuarioRepository,
	) error {
		var err error
		reserva, err = reservaRepo.GetByID(reservaID)
		if err != nil {
			return err
		}
		if reserva == nil {
			return domain.ErrNotFound
		}
		if reserva.CheckIn.Realizado {
			return domain.ErrCheckInRealizado
		}
		if reserva.Estado != entity.ReservaConfirmada {
			return domain.ErrConflict
		}
		reserva.Estado = entity.ReservaEnCurso
		reserva.CheckIn = entity.RegistroCheck{Realizado: true, Fecha: time.Now(), RealizadoPor: staffID}
		reserva.UpdatedAt = time.Now()
		if err := reservaRepo.Update(reserva); err != nil {
			return err
		}
		return depRepo.UpdateEstado(reserva.DepartamentoID, entity.EstadoOcupado)
	})
	if err != nil {
		return nil, err
	}
	return toReservaResponse(reserva), nil
}

// CheckOut pasa la reserva de en-curso a completada y libera el departamento.
// Exige check-in previo. Si la reserva todavía no tiene factura intenta
// generarla tras el commit, sin propagar el error.
func (uc *ReservaUseCase) CheckOut(ctx context.Context, reservaID, staffID string) (*dto.ReservaResponse, error) {
	var reserva *entity.Reserva
	err := uc.txRunner.RunReserva(ctx, func(
		depRepo repository.DepartamentoRepository,
		reservaRepo repository.ReservaRepository,
		_ repository.ClienteRepository,
		_ repository.UsuarioRepository,
	) error {
		var err error
		reserva, err = reservaRepo.GetByID(reservaID)
		if err != nil {
			return err
		}
		if reserva == nil {
			return domain.ErrNotFound
		}
		if !reserva.CheckIn.Realizado {
			return domain.ErrCheckInPendiente
		}
		if reserva.CheckOut.Realizado {
			return domain.ErrCheckOutRealizado
		}
		if reserva.Estado != entity.ReservaEnCurso {
			return domain.ErrConflict
		}
		reserva.Estado = entity.ReservaCompletada
		reserva.CheckOut = entity.RegistroCheck{Realizado: true, Fecha: time.Now(), RealizadoPor: staffID}
		reserva.UpdatedAt = time.Now()
		if err := reservaRepo.Update(reserva); err != nil {
			return err
		}
		return depRepo.UpdateEstado(reserva.DepartamentoID, entity.EstadoDisponible)
	})
	if err != nil {
		return nil, err
	}

	if _, err := uc.facturador.CrearDesdeReserva(reserva.ID); err != nil && !errors.Is(err, domain.ErrFacturaExiste) {
		uc.log.Warn().Err(err).
			Str("reserva_id", reserva.ID).
			Msg("no se pudo generar la factura en el check-out")
	}
	return toReservaResponse(reserva), nil
}

// Cancelar anula una reserva confirmada o en curso y libera el departamento.
// Los clientes solo cancelan las reservas propias.
func (uc *ReservaUseCase) Cancelar(ctx context.Context, reservaID, solicitanteID, rol string) (*dto.ReservaResponse, error) {
	var reserva *entity.Reserva
	err := uc.txRunner.RunReserva(ctx, func(
		depRepo repository.DepartamentoRepository,
		reservaRepo repository.ReservaRepository,
		_ repository.ClienteRepository,
		_ repository.UsuarioRepository,
	) error {
		var err error
		reserva, err = reservaRepo.GetByID(reservaID)
		if err != nil {
			return err
		}
		if reserva == nil {
			return domain.ErrNotFound
		}
		if rol != entity.RolAdmin && reserva.UsuarioID != solicitanteID {
			return domain.ErrForbidden
		}
		if !reserva.Activa() {
			return domain.ErrConflict
		}
		reserva.Estado = entity.ReservaCancelada
		reserva.UpdatedAt = time.Now()
		if err := reservaRepo.Update(reserva); err != nil {
			return err
		}
		return depRepo.UpdateEstado(reserva.DepartamentoID, entity.EstadoDisponible)
	})
	if err != nil {
		return nil, err
	}
	return toReservaResponse(reserva), nil
}

// GetByID devuelve una reserva. Los clientes solo ven las suyas.
func (uc *ReservaUseCase) GetByID(reservaID, solicitanteID, rol string) (*dto.ReservaResponse, error) {
	reserva, err := uc.reservaRepo.GetByID(reservaID)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin && reserva.UsuarioID != solicitanteID {
		return nil, domain.ErrForbidden
	}
	return toReservaResponse(reserva), nil
}

// List devuelve reservas filtradas. Para rol cliente el filtro se fuerza al
// usuario solicitante.
func (uc *ReservaUseCase) List(solicitanteID, rol string, filtro repository.FiltroReservas) ([]*dto.ReservaResponse, error) {
	if rol != entity.RolAdmin {
		filtro.UsuarioID = solicitanteID
	}
	reservas, err := uc.reservaRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReservaResponse, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, toReservaResponse(r))
	}
	return out, nil
}

// Actualizar modifica los campos editables de una reserva activa. Los
// clientes solo actualizan las reservas propias.
func (uc *ReservaUseCase) Actualizar(reservaID, solicitanteID, rol string, in dto.ActualizarReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := uc.reservaRepo.GetByID(reservaID)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin && reserva.UsuarioID != solicitanteID {
		return nil, domain.ErrForbidden
	}
	if !reserva.Activa() {
		return nil, domain.ErrConflict
	}
	if in.NumeroHuespedes != nil {
		dep, err := uc.depRepo.GetByID(reserva.DepartamentoID)
		if err != nil {
			return nil, err
		}
		if dep != nil && *in.NumeroHuespedes > dep.CapacidadPersonas {
			return nil, domain.ErrCapacidadExcedida
		}
		if *in.NumeroHuespedes < 1 {
			return nil, domain.ErrInvalidInput
		}
		reserva.NumeroHuespedes = *in.NumeroHuespedes
	}
	if in.Observaciones != nil {
		reserva.Observaciones = *in.Observaciones
	}
	if in.SolicitudesEspeciales != nil {
		reserva.SolicitudesEspeciales = *in.SolicitudesEspeciales
	}
	reserva.UpdatedAt = time.Now()
	if err := uc.reservaRepo.Update(reserva); err != nil {
		return nil, err
	}
	return toReservaResponse(reserva), nil
}

// Delete elimina una reserva (solo admin; las canceladas o completadas).
func (uc *ReservaUseCase) Delete(reservaID string) error {
	reserva, err := uc.reservaRepo.GetByID(reservaID)
	if err != nil {
		return err
	}
	if reserva == nil {
		return domain.ErrNotFound
	}
	if reserva.Activa() {
		return domain.ErrConflict
	}
	return uc.reservaRepo.Delete(reservaID)
}

// Disponibles lista los departamentos libres para un rango de fechas.
func (uc *ReservaUseCase) Disponibles(fechaInicio, fechaFin string, filtro repository.FiltroDepartamentos) ([]*entity.Departamento, error) {
	inicio, fin, err := parseRango(fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}
	deps, err := uc.depRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	libres := make([]*entity.Departamento, 0, len(deps))
	for _, dep := range deps {
		existentes, err := uc.reservaRepo.ListActivasPorDepartamento(dep.ID)
		if err != nil {
			return nil, err
		}
		if domainbooking.Disponible(dep, existentes, inicio, fin) {
			libres = append(libres, dep)
		}
	}
	return libres, nil
}

func parseRango(fechaInicio, fechaFin string) (time.Time, time.Time, error) {
	inicio, err := time.Parse("2006-01-02", fechaInicio)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
	}
	fin, err := time.Parse("2006-01-02", fechaFin)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
	}
	if !fin.After(inicio) {
		return time.Time{}, time.Time{}, domain.ErrFechasInvalidas
	}
	return inicio, fin, nil
}

func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nuevoCodigoReserva() string {
	return "PV-" + strings.ToUpper(uuid.New().String()[:8])
}

func toReservaResponse(r *entity.Reserva) *dto.ReservaResponse {
	return dto.NewReservaResponse(r)
}
