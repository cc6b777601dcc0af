package api

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func servePNG(t *testing.T, w, h int, c color.NRGBA) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.New(w, h, c)); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "image/png")
		rw.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postJoin(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/join", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestJoinHandler(t *testing.T) {
	red := servePNG(t, 10, 10, color.NRGBA{R: 0xff, A: 0xff})
	blue := servePNG(t, 10, 10, color.NRGBA{B: 0xff, A: 0xff})

	rec := postJoin(t, newTestRouter(), map[string]any{
		"image_urls": []string{red.URL, blue.URL},
		"direction":  "horizontal",
		"filter":     "nearest",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	out, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 10 {
		t.Fatalf("expected a 20x10 join, got %v", out.Bounds())
	}
}

func TestJoinHandlerAppendsQR(t *testing.T) {
	red := servePNG(t, 50, 50, color.NRGBA{R: 0xff, A: 0xff})

	rec := postJoin(t, newTestRouter(), map[string]any{
		"image_urls": []string{red.URL, red.URL},
		"direction":  "horizontal",
		"qr_text":    "https://example.com/share/abc",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	out, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	// Two 50x50 photos plus a square QR scaled to height 50.
	if out.Bounds().Dx() != 150 || out.Bounds().Dy() != 50 {
		t.Fatalf("expected a 150x50 join, got %v", out.Bounds())
	}
}

func TestJoinHandlerRejectsEmpty(t *testing.T) {
	rec := postJoin(t, newTestRouter(), map[string]any{
		"image_urls": []string{},
		"direction":  "vertical",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJoinHandlerRejectsBadDirection(t *testing.T) {
	red := servePNG(t, 10, 10, color.NRGBA{R: 0xff, A: 0xff})
	rec := postJoin(t, newTestRouter(), map[string]any{
		"image_urls": []string{red.URL},
		"direction":  "diagonal",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJoinHandlerBadUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.NotFound(rw, r)
	}))
	t.Cleanup(srv.Close)

	rec := postJoin(t, newTestRouter(), map[string]any{
		"image_urls": []string{srv.URL},
		"direction":  "horizontal",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
