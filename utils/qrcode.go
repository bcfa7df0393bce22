package utils

import "github.com/skip2/go-qrcode"

// RenderQRCode encodes a table's QR token as a PNG for printing.
func RenderQRCode(token string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(token, qrcode.Medium, size)
}
