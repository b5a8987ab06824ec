package handlers

import (
	"bytes"
	"net/http"
	"time"

	"lashstudio/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// ExportBookingsPDF renders the current booking table as a landscape A4 PDF
// for the dashboard's export button.
func (h *AdminHandler) ExportBookingsPDF(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list bookings for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	pdf := buildBookingsPDF(bookings)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		h.Logger.Error("Failed to render bookings PDF", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func buildBookingsPDF(bookings []models.Booking) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Bookings")
	pdf.Ln(12)

	headers := []string{"Number", "Name", "Email", "Phone", "Service", "Date", "Status", "Created"}
	widths := []float64{22, 40, 55, 30, 35, 30, 25, 35}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, head := range headers {
		pdf.CellFormat(widths[i], 8, head, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range bookings {
		row := []string{
			b.BookingNumber, b.Name, b.Email, b.Phone, b.Service, b.Date,
			b.Status, b.CreatedAt.Format(time.DateOnly),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf
}
