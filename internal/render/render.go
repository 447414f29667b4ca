// Package render rasterises a window of the field into an image, one pixel
// per cell.
//
// Two encodings are supported: binary PPM (P6), the native format, and PNG
// for viewers without netpbm support. ToFile picks one by file extension.
package render

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/field"
)

// ErrIO indicates the image could not be created or written.
var ErrIO = errors.New("render: i/o failure")

func ioErr(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// WritePPM writes win as a binary PPM: the ASCII header "P6", the
// dimensions and the maximum colour value 255, each on its own line, then
// 3 bytes per cell row-major with no padding.
func WritePPM(w io.Writer, f *field.Field, win Window, pal Palette) error {
	if err := win.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", win.Width(), win.Height()); err != nil {
		return ioErr(err)
	}

	err := win.each(func(c cell.Coord) error {
		state, err := f.CellState(c)
		if err != nil {
			return err
		}
		rgb := pal.Color(state)
		if _, err := bw.Write(rgb[:]); err != nil {
			return ioErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return ioErr(err)
	}
	return nil
}

// WritePNG writes the same raster as WritePPM, PNG encoded.
func WritePNG(w io.Writer, f *field.Field, win Window, pal Palette) error {
	if err := win.Validate(); err != nil {
		return err
	}
	if win.Width() > math.MaxInt32 || win.Height() > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d exceeds PNG limits", ErrWindowTooLarge, win.Width(), win.Height())
	}

	img := image.NewRGBA(image.Rect(0, 0, int(win.Width()), int(win.Height())))
	err := win.each(func(c cell.Coord) error {
		state, err := f.CellState(c)
		if err != nil {
			return err
		}
		rgb := pal.Color(state)
		i := img.PixOffset(int(c.X-win.X0), int(c.Y-win.Y0))
		img.Pix[i+0] = rgb[0]
		img.Pix[i+1] = rgb[1]
		img.Pix[i+2] = rgb[2]
		img.Pix[i+3] = 0xFF
		return nil
	})
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return ioErr(err)
	}
	if err := bw.Flush(); err != nil {
		return ioErr(err)
	}
	return nil
}

// ToFile renders win into the file at path, creating or truncating it.
// A ".png" extension selects PNG; anything else is written as PPM.
func ToFile(ctx context.Context, path string, f *field.Field, win Window, pal Palette) (err error) {
	logger := ctxlog.FromContext(ctx)
	if err := win.Validate(); err != nil {
		return err
	}

	write, format := WritePPM, "ppm"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		write, format = WritePNG, "png"
	}
	logger.Debug("Rendering window.", "path", path, "format", format,
		"width", win.Width(), "height", win.Height())

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, ioErr(err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, ioErr(cerr))
		}
	}()

	if err := write(file, f, win, pal); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	logger.Debug("Window rendered.", "path", path)
	return nil
}
