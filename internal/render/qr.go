package render

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRSize is the edge length in pixels of join QR codes
const QRSize = 256

// JoinQRCode encodes the join link of a show as a PNG QR code
func JoinQRCode(joinURL string) ([]byte, error) {
	return qrcode.Encode(joinURL, qrcode.Medium, QRSize)
}
