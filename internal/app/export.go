// internal/app/export.go
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go-treehouse/internal/config"
	"go-treehouse/pkg/utils"
)

// GemRecord: камень в экспортированном дизайне
type GemRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpriteRecord: состояние спрайта в экспортированном дизайне
type SpriteRecord struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Design is the write-only export document. There is no loader for it.
type Design struct {
	Platforms int          `json:"platforms"`
	RoofColor *string      `json:"roofColor"`
	Gems      []GemRecord  `json:"gems"`
	Sprite    SpriteRecord `json:"sprite"`
}

// Snapshot captures the exportable part of the scene.
func (s *Scene) Snapshot() Design {
	d := Design{
		Platforms: len(s.Platforms),
		Gems:      make([]GemRecord, 0, len(s.Gems)),
		Sprite: SpriteRecord{
			X:     s.Sprite.X,
			Y:     s.Sprite.Y,
			Color: utils.HexColor(s.Sprite.Color),
		},
	}
	if s.Roof != nil {
		c := utils.HexColor(s.Roof.Color)
		d.RoofColor = &c
	}
	for _, g := range s.Gems {
		d.Gems = append(d.Gems, GemRecord{X: g.X, Y: g.Y})
	}
	return d
}

// EncodeDesign пишет дизайн в виде JSON
func EncodeDesign(w io.Writer, d Design) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}
	return nil
}

// ExportDesign writes the design to config.ExportFileName inside dir,
// replacing any earlier export, and returns the file path.
func ExportDesign(dir string, d Design) (path string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path = filepath.Join(dir, config.ExportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", cerr)
		}
	}()
	if err := EncodeDesign(f, d); err != nil {
		return "", err
	}
	return path, nil
}
