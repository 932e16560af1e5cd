package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVendorQR generates a storefront QR code for a vendor profile.
	GenerateVendorQR(vendorID uuid.UUID) ([]byte, error)

	// ParseVendorQR parses QR code data and returns the vendor ID.
	ParseVendorQR(qrData string) (uuid.UUID, error)
}
