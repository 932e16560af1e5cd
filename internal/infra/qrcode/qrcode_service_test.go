package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateVendorQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://bazaar.ng")
	vendorID := uuid.New()

	qrBytes, err := service.GenerateVendorQR(vendorID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateVendorQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			vendorID := uuid.New()

			qrBytes, err := service.GenerateVendorQR(vendorID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseVendorQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	vendorID := uuid.New()

	data := QRCodeData{
		VendorID: vendorID.String(),
		Type:     "vendor",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseVendorQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsedID)
}

func TestQRCodeService_ParseVendorQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.ParseVendorQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseVendorQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		VendorID: uuid.New().String(),
		Type:     "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseVendorQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseVendorQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	data := QRCodeData{
		VendorID: "not-a-uuid",
		Type:     "vendor",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseVendorQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse vendor ID")
}

func TestQRCodeService_RoundTrip_WithBaseURL(t *testing.T) {
	service := NewQRCodeService(256, "H", "https://bazaar.ng")
	vendorID := uuid.New()

	data := QRCodeData{
		VendorID: vendorID.String(),
		Type:     "vendor",
		URL:      "https://bazaar.ng/vendors/" + vendorID.String(),
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseVendorQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsedID)
}
