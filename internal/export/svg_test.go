package export

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/render"
	"github.com/san-kum/attractor/internal/vecmath"
)

func TestSVGSinkWritesCircles(t *testing.T) {
	s := NewSVG(100, 50)
	s.Clear(color.RGBA{0, 0, 0, 255})
	s.DrawCircle(10, 20, 3, color.RGBA{255, 128, 0, 255})
	s.DrawCircle(30, 40, 3, color.RGBA{255, 255, 255, 0})
	s.DrawCircle(50, 10, 2, color.RGBA{255, 255, 255, 51})

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(out, `<circle cx="10.0" cy="20.0" r="3.0" fill="#ff8000" fill-opacity="1.000"/>`) {
		t.Errorf("missing opaque circle:\n%s", out)
	}
	if !strings.Contains(out, `fill-opacity="0.200"`) {
		t.Errorf("missing faded circle:\n%s", out)
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("fully transparent circles should be skipped, got %d circles", got)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestSVGSinkKeepsLatestFrame(t *testing.T) {
	a, err := attractor.New(4, attractor.DefaultParams(), attractor.WithSeed(3), attractor.WithTrailLength(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		a.Update(0.01)
	}

	s := NewSVG(800, 800)
	r := render.DefaultRenderer()
	r.Draw(s, a)
	r.Draw(s, a)

	if s.Len() != 20 {
		t.Errorf("expected 20 circles in the latest frame, got %d", s.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	s := NewSVG(10, 10)
	s.Clear(color.RGBA{})
	if _, err := s.WriteTo(failingWriter{}); err == nil {
		t.Error("expected write error")
	}
}

func TestPathsToSVG(t *testing.T) {
	series := [][]vecmath.Vector3{
		{vecmath.New(0, 0, 0), vecmath.New(10, 0, 10), vecmath.New(-10, 0, 20)},
		{vecmath.New(1, 1, 1)},
	}
	out := PathsToSVG(series, 200, 100, "#00ff00")

	if got := strings.Count(out, "<path"); got != 1 {
		t.Errorf("expected 1 path, got %d", got)
	}
	if !strings.Contains(out, `stroke="#00ff00"`) {
		t.Error("missing stroke colour")
	}
	if !strings.Contains(out, "M100.0,") {
		t.Errorf("expected path to start at horizontal centre:\n%s", out)
	}
}
