package artifact

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// TicketData 票券上的內容；QRCode 為 PNG，可為 nil
type TicketData struct {
	EventTitle   string
	Date         string
	Time         string
	Address      string
	RegisteredTo string
	QRCode       []byte
	IssuedAt     time.Time
}

type TicketRenderer interface {
	Render(data TicketData) ([]byte, error)
}

type PDFTicketRenderer struct{}

func NewTicketRenderer() TicketRenderer {
	return &PDFTicketRenderer{}
}

// 版面座標以 pt 為單位、原點在左上角
const (
	ticketTitleY   = 100.0
	ticketLineX    = 100.0
	ticketFirstY   = 150.0
	ticketLineStep = 20.0
	ticketQRSize   = 100.0
	ticketQRRight  = 250.0
	ticketQRTop    = 220.0
)

func (r *PDFTicketRenderer) Render(data TicketData) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCatalogSort(true)
	if !data.IssuedAt.IsZero() {
		pdf.SetCreationDate(data.IssuedAt)
	}
	pdf.SetTitle(data.EventTitle+" ticket", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	width, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 20)
	heading := "Event Ticket"
	pdf.Text((width-pdf.GetStringWidth(heading))/2, ticketTitleY, heading)

	pdf.SetFont("Helvetica", "", 14)
	lines := []string{
		"Event: " + data.EventTitle,
		"Date: " + data.Date,
		"Time: " + data.Time,
		"Address: " + data.Address,
		"Registered to: " + data.RegisteredTo,
	}
	for i, line := range lines {
		pdf.Text(ticketLineX, ticketFirstY+float64(i)*ticketLineStep, tr(line))
	}

	if len(data.QRCode) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(data.QRCode))
		pdf.ImageOptions("qr", width-ticketQRRight, ticketQRTop, ticketQRSize, ticketQRSize, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func TicketFilename(eventTitle string) string {
	return fmt.Sprintf("%s_ticket.pdf", eventTitle)
}
