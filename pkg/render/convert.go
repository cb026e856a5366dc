package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/chartaxes/pkg/errors"
)

// converter is the external tool used for vector conversions.
const converter = "rsvg-convert"

// Available reports whether rsvg-convert can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return ToPDFContext(context.Background(), svg)
}

// ToPDFContext is ToPDF with cancellation: the conversion process is killed
// when ctx is done.
func ToPDFContext(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, converter, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converter, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
