package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizePNGBecomesJPEG(t *testing.T) {
	out, err := Normalize(encodePNG(t, 32, 32))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not JPEG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("small image was resized: %v", img.Bounds())
	}
}

func TestNormalizeDownscales(t *testing.T) {
	out, err := Normalize(encodePNG(t, MaxDimension*2, MaxDimension))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != MaxDimension {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), MaxDimension)
	}
	if img.Bounds().Dy() != MaxDimension/2 {
		t.Errorf("aspect ratio not preserved: %v", img.Bounds())
	}
}

func TestNormalizeRejectsNonImage(t *testing.T) {
	_, err := Normalize([]byte("<html>definitely not an image</html>"))
	if err == nil || !strings.Contains(err.Error(), "unsupported image format") {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	if _, err := Normalize(nil); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestNormalizeRejectsOversized(t *testing.T) {
	// Valid PNG magic so the size check is what trips, not format sniffing.
	data := make([]byte, MaxUploadBytes+1)
	copy(data, "\x89PNG\r\n\x1a\n")
	if _, err := Normalize(data); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("expected size error, got %v", err)
	}
}
