package service

import (
	"bytes"
	"fmt"

	"dental-clinic-api/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// ReportService renders printable documents. Currently only the
// clinical history export.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// HistorialPDF renders a patient's clinical history, newest entry
// first, one block per consultation.
func (s *ReportService) HistorialPDF(paciente *entity.Paciente, entradas []entity.HistorialClinico) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Historial Clínico", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Historial Clínico")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Paciente: %s %s", paciente.Nombre, paciente.Apellidos))
	pdf.Ln(6)
	if paciente.Telefono != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Teléfono: %s", paciente.Telefono))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, e := range entradas {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Consulta del %s", e.FechaConsulta.Format("2006-01-02")))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		writeSection(pdf, "Motivo", e.MotivoConsulta)
		writeSection(pdf, "Antecedentes médicos", e.AntecedentesMedicos)
		writeSection(pdf, "Antecedentes odontológicos", e.AntecedentesOdontologicos)
		writeSection(pdf, "Examen extraoral", e.ExamenExtraoral)
		writeSection(pdf, "Examen intraoral", e.ExamenIntraoral)
		writeSection(pdf, "Diagnóstico", e.Diagnostico)
		writeSection(pdf, "Tratamiento", e.Tratamiento)
		writeSection(pdf, "Plan de tratamiento", e.PlanTratamiento)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title, body string) {
	if body == "" {
		return
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, title+":")
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, body, "", "L", false)
	pdf.Ln(2)
}
