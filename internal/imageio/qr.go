package imageio

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// QRImage renders text as a size x size QR code raster, suitable for
// appending to a join sequence as a share link.
func QRImage(text string, size int) (image.Image, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(pngBytes))
}
