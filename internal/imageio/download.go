package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// Download fetches url and decodes the response body as an image.
func Download(url string) (image.Image, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return img, nil
}
