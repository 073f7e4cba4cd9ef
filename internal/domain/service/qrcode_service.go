package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateTrackingQR generates a QR code image that encodes the public
	// tracking URL for an order number.
	GenerateTrackingQR(orderNumber string) ([]byte, error)
}
