package render

import (
	"context"
	"testing"

	"github.com/matzehuels/domino/pkg/errors"
)

func TestConvertWithoutRsvg(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if Available() {
		t.Fatal("rsvg-convert found on an empty PATH")
	}

	for _, to := range []Target{PNG, PDF} {
		_, err := Convert(context.Background(), []byte("<svg/>"), to, 2)
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("Convert to %s error = %v, want UNSUPPORTED", to, err)
		}
	}
}

func TestConvertWithRsvg(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)

	png, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("ToPNG output starts %q", png[:min(8, len(png))])
	}

	pdf, err := ToPDF(context.Background(), svg)
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("ToPDF output starts %q", pdf[:min(4, len(pdf))])
	}
}
