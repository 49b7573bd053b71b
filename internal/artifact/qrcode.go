package artifact

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	QRCodeSize = 256
	QRCodeDir  = "qr_codes"
)

type QRGenerator interface {
	// EventURL 活動頁面的絕對網址，QR code 內容即為此網址
	EventURL(eventID int) string
	Generate(eventID int) ([]byte, error)
}

type QRGeneratorImpl struct {
	baseURL string
}

func NewQRGenerator(baseURL string) QRGenerator {
	return &QRGeneratorImpl{baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *QRGeneratorImpl) EventURL(eventID int) string {
	return fmt.Sprintf("%s/event/%d/", g.baseURL, eventID)
}

func (g *QRGeneratorImpl) Generate(eventID int) ([]byte, error) {
	png, err := qrcode.Encode(g.EventURL(eventID), qrcode.Medium, QRCodeSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}

func QRCodeFilename(eventID int) string {
	return fmt.Sprintf("qr_code_%d.png", eventID)
}
