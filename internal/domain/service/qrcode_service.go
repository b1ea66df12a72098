package service

import "github.com/google/uuid"

// QRCodeService renders share codes for catalogued artworks.
type QRCodeService interface {
	// GenerateArtworkQR encodes a share payload for the artwork and returns
	// the rendered PNG bytes.
	GenerateArtworkQR(artworkID uuid.UUID) ([]byte, error)
}
