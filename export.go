package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// paperColor parses the configured backdrop color, falling back to white.
func paperColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.White
	}
	return c
}

// flatten composites the transparent canvas onto an opaque paper backdrop.
func flatten(im image.Image, paper color.Color) *image.NRGBA {
	b := im.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), paper)
	return imaging.Overlay(bg, im, image.Pt(0, 0), 1.0)
}

func exportFileName() string {
	return fmt.Sprintf("bouquet-%s.png", uuid.NewString()[:8])
}

// exportPNG writes the scene without the selection overlay to a new file in
// the save directory and returns its path.
func exportPNG(e *Editor, r *Renderer, cfg *Config) (string, error) {
	if e.Scene().Len() == 0 {
		return "", newError(ErrCodeExportFailed, "nothing to export")
	}
	path, err := cfg.SavePath(exportFileName())
	if err != nil {
		return "", wrapError(ErrCodeExportFailed, err, "prepare save directory")
	}
	im := flatten(r.Render(e.Scene(), false), paperColor(cfg.Paper))
	if err := gg.SavePNG(path, im); err != nil {
		return "", wrapError(ErrCodeExportFailed, err, "write %s", path)
	}
	return path, nil
}
