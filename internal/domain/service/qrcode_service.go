package service

// QRCodeService renders scannable codes for user pairing.
type QRCodeService interface {
	// GenerateUserCodeQR returns a PNG that encodes the pairing payload for userCode.
	GenerateUserCodeQR(userCode string) ([]byte, error)

	// ParseUserCodeQR extracts the user code from a scanned payload.
	ParseUserCodeQR(qrData string) (string, error)
}
