package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/domino/pkg/errors"
)

// Target is a raster or document format reachable from SVG.
type Target string

const (
	PNG Target = "png"
	PDF Target = "pdf"
)

// converterBinary is the librsvg command line tool.
const converterBinary = "rsvg-convert"

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(converterBinary)
	return err == nil
}

// Convert pipes svg through rsvg-convert. scale only applies to PNG; values
// at or below zero leave the size unchanged. The process is killed when ctx
// is cancelled.
//
// A missing rsvg-convert is reported as [errors.ErrCodeUnsupported].
func Convert(ctx context.Context, svg []byte, to Target, scale float64) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output needs rsvg-convert (macOS: brew install librsvg, Linux: apt install librsvg2-bin)", to)
	}

	args := []string{"-f", string(to)}
	if to == PNG && scale > 0 {
		args = append(args, "-z", strconv.FormatFloat(scale, 'f', 2, 64))
	}
	cmd := exec.CommandContext(ctx, converterBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converterBinary, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

// ToPDF converts SVG bytes to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return Convert(ctx, svg, PDF, 0)
}

// ToPNG converts SVG bytes to PNG, scaled by scale (2 doubles the size).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return Convert(ctx, svg, PNG, scale)
}
