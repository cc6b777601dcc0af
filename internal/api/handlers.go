package api

import (
	"bytes"
	"image"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youruser/photojoin/internal/imageio"
	"github.com/youruser/photojoin/internal/join"
)

type joinRequest struct {
	ImageURLs []string `json:"image_urls"`
	Direction string   `json:"direction"`
	Sizing    string   `json:"sizing"`
	Filter    string   `json:"filter"`
	QRText    string   `json:"qr_text"`
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// joinHandler downloads every requested image, joins them along the given
// direction, and responds with the composed PNG.
func joinHandler(c *gin.Context) {
	var req joinRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ImageURLs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image urls provided"})
		return
	}
	direction, err := join.ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sizing, err := join.ParseSizing(req.Sizing)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Every requested image must make it into the output, so any
	// download failure fails the whole request.
	images := make([]image.Image, 0, len(req.ImageURLs))
	for _, u := range req.ImageURLs {
		img, err := imageio.Download(u)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		images = append(images, img)
	}
	if req.QRText != "" {
		qr, err := imageio.QRImage(req.QRText, 400)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		images = append(images, qr)
	}

	out, err := join.Join(images, join.Options{
		Direction: direction,
		Sizing:    sizing,
		Filter:    join.ParseFilter(req.Filter),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
