package config

import (
	"flag"
	"image/color"
	"testing"
)

func TestDefaultOptionsValid(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	if opts.SpriteRGBA() != SpriteColor {
		t.Errorf("default sprite color = %v, want %v", opts.SpriteRGBA(), SpriteColor)
	}
}

func TestRegisterFlags(t *testing.T) {
	opts := DefaultOptions()
	fs := flag.NewFlagSet("treehouse", flag.ContinueOnError)
	opts.RegisterFlags(fs)

	args := []string{
		"-width", "640", "-height", "480",
		"-seed", "42", "-export-dir", "/tmp/designs",
		"-debug-addr", "", "-mute", "-sprite-color", "#00FF00",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if opts.Width != 640 || opts.Height != 480 || opts.Seed != 42 {
		t.Errorf("size/seed = %dx%d/%d", opts.Width, opts.Height, opts.Seed)
	}
	if opts.ExportDir != "/tmp/designs" || opts.DebugAddr != "" || !opts.Muted {
		t.Errorf("opts = %+v", opts)
	}
	if opts.SpriteRGBA() != (color.RGBA{0, 0xFF, 0, 0xFF}) {
		t.Errorf("sprite color = %v", opts.SpriteRGBA())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative height", func(o *Options) { o.Height = -1 }},
		{"empty export dir", func(o *Options) { o.ExportDir = "" }},
		{"bad sprite color", func(o *Options) { o.SpriteColor = "pink" }},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		tt.modify(&opts)
		if err := opts.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRoofPalette(t *testing.T) {
	if len(RoofColors) != 3 {
		t.Fatalf("palette size = %d, want 3", len(RoofColors))
	}
	if RoofColors[0] != GemColor {
		t.Errorf("first roof color %v should be gold", RoofColors[0])
	}
}
