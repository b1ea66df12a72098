// Package qrcode renders share codes for catalogued artworks.
package qrcode

import (
	"encoding/json"
	"fmt"

	"kunstcollectie/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// shareData is the payload encoded into an artwork share code.
type shareData struct {
	ArtworkID string `json:"artwork_id"`
	URL       string `json:"url,omitempty"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateArtworkQR encodes a share payload for the artwork and returns the
// rendered PNG bytes.
func (s *qrcodeService) GenerateArtworkQR(artworkID uuid.UUID) ([]byte, error) {
	data := shareData{
		ArtworkID: artworkID.String(),
		Type:      "artwork",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/api/artworks/%s", s.baseURL, artworkID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
