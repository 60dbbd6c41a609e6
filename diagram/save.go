package diagram

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WriteTo renders the diagram in the given format: png, jpg, jpeg, tif and
// tiff honour the configured DPI; svg, pdf and eps are vector output.
func (r *Renderer) WriteTo(w io.Writer, format string) (int64, error) {
	r.applyLimits()
	format = strings.ToLower(strings.TrimPrefix(format, "."))

	var wt io.WriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
		r.plot.Draw(draw.New(c))
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: c}
		default:
			wt = vgimg.TiffCanvas{Canvas: c}
		}
	default:
		var err error
		wt, err = r.plot.WriterTo(r.width, r.height, format)
		if err != nil {
			return 0, fmt.Errorf("render %s: %w", format, err)
		}
	}
	return wt.WriteTo(w)
}

// Save writes the diagram to path; the extension picks the format.
func (r *Renderer) Save(path string) (err error) {
	format := filepath.Ext(path)
	if format == "" {
		return fmt.Errorf("save %s: missing file extension", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save: %w", cerr)
		}
	}()

	n, err := r.WriteTo(f, format)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	r.log.Info("diagram saved",
		zap.String("path", path),
		zap.Int64("bytes", n),
		zap.Int("waves", len(r.waves)))
	return nil
}
