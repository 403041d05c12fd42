package billing

import (
	"context"
	"fmt"

	"github.com/paraisoverde/hotel-api/internal/domain"
	"github.com/paraisoverde/hotel-api/internal/domain/entity"
	"github.com/paraisoverde/hotel-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de una factura.
type PDFUseCase struct {
	facturaRepo repository.FacturaRepository
	reservaRepo repository.ReservaRepository
	clienteRepo repository.ClienteRepository
	depRepo     repository.DepartamentoRepository
	generator   FacturaPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	facturaRepo repository.FacturaRepository,
	reservaRepo repository.ReservaRepository,
	clienteRepo repository.ClienteRepository,
	depRepo repository.DepartamentoRepository,
	generator FacturaPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		facturaRepo: facturaRepo,
		reservaRepo: reservaRepo,
		clienteRepo: clienteRepo,
		depRepo:     depRepo,
		generator:   generator,
	}
}

// DescargarFacturaPDF carga la factura con su reserva, cliente y departamento
// y genera el PDF. Los clientes solo descargan las facturas propias.
func (uc *PDFUseCase) DescargarFacturaPDF(
	ctx context.Context,
	facturaID, solicitanteID, rol string,
) (pdfBytes []byte, filename string, err error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if factura == nil {
		return nil, "", domain.ErrNotFound
	}
	if rol != entity.RolAdmin {
		cliente, err := uc.clienteRepo.GetByUsuario(solicitanteID)
		if err != nil {
			return nil, "", err
		}
		if cliente == nil || cliente.ID != factura.ClienteID {
			return nil, "", domain.ErrForbidden
		}
	}

	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", domain.ErrNotFound
	}
	reserva, err := uc.reservaRepo.GetByID(factura.ReservaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener reserva: %w", err)
	}
	if reserva == nil {
		return nil, "", domain.ErrNotFound
	}
	departamento, err := uc.depRepo.GetByID(reserva.DepartamentoID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener departamento: %w", err)
	}
	if departamento == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerarFacturaPDF(ctx, factura, cliente, reserva, departamento)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("factura_%s.pdf", factura.NumeroFactura)
	return pdfBytes, filename, nil
}
