// Package qrcode renders pairing QR codes for user codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"peeko/internal/domain/service"
	"peeko/internal/errors"

	"github.com/skip2/go-qrcode"
)

// PairingType marks payloads produced by this service.
const PairingType = "peeko-pair"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PairingPayload is the JSON encoded inside a pairing QR code.
type PairingPayload struct {
	Type     string `json:"type"`
	UserCode string `json:"userCode"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateUserCodeQR renders the pairing payload for userCode as PNG.
func (s *qrcodeService) GenerateUserCodeQR(userCode string) ([]byte, error) {
	if strings.TrimSpace(userCode) == "" {
		return nil, errors.New("user code is required")
	}

	jsonData, err := json.Marshal(PairingPayload{Type: PairingType, UserCode: userCode})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseUserCodeQR parses scanned QR data and returns the user code.
func (s *qrcodeService) ParseUserCodeQR(qrData string) (string, error) {
	var data PairingPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != PairingType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	code := strings.ToUpper(strings.TrimSpace(data.UserCode))
	if code == "" {
		return "", errors.New("QR code carries no user code")
	}

	return code, nil
}
