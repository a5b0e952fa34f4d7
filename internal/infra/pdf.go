package infra

import (
	"bytes"
	"fmt"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/dto"

	"github.com/go-pdf/fpdf"
)

// PDFGenerator renders printable request summaries with go-pdf/fpdf.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator { return &PDFGenerator{} }

// Solicitud renders an A4 one-pager for a machinery request: header, request
// details, and the allocation table (machine type, quantity).
func (g *PDFGenerator) Solicitud(resp dto.SolicitudResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Solicitud de Maquinaria", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, "Solicitud "+resp.ID, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Details ──────────────────────────────────────────────────────────────
	labelW := contentW * 0.3
	valueW := contentW * 0.7

	fila := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(valueW, 7, value, "", 1, "L", false, 0, "")
	}

	if resp.Empresa != nil {
		fila("Empresa:", resp.Empresa.NombreEmpresa)
		fila("NIT:", resp.Empresa.NIT)
	}
	fila("Proyecto:", resp.Proyecto)
	fila("Ubicacion:", resp.Ubicacion)
	fila("Fecha de solicitud:", resp.FechaSolicitud)
	fila("Fecha de uso:", resp.FechaUso)
	fila("Horario:", resp.HoraInicio+" - "+resp.HoraFin)
	fila("Estado:", resp.Estado)
	pdf.Ln(4)

	// ── Allocation table ─────────────────────────────────────────────────────
	col1 := contentW * 0.7
	col2 := contentW * 0.3

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "Maquina", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, "Cantidad", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	total := 0
	for _, a := range resp.Asignaciones {
		tipo := a.MaquinaID
		if a.Maquina != nil {
			tipo = a.Maquina.Tipo
		}
		pdf.CellFormat(col1, 7, tipo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, fmt.Sprintf("%d", a.Cantidad), "", 1, "R", false, 0, "")
		total += a.Cantidad
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "Total de maquinas", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, fmt.Sprintf("%d", total), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render solicitud: %w", err)
	}
	return buf.Bytes(), nil
}
