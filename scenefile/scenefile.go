// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/two"
	"github.com/gogpu/two/backend"
)

// Errors returned while loading or building a scene.
var (
	// ErrUnknownKind is returned for a shape kind this package does not know.
	ErrUnknownKind = errors.New("scenefile: unknown shape kind")

	// ErrUnknownFormat is returned for file extensions other than YAML or TOML.
	ErrUnknownFormat = errors.New("scenefile: unknown format")
)

// Format is a document encoding.
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a Format from a file name extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Document is a whole scene file.
type Document struct {
	Surface Surface `yaml:"surface" toml:"surface"`
	Shapes  []Shape `yaml:"shapes" toml:"shapes"`
}

// Surface configures the surface a document is built onto. Zero fields
// keep the surface defaults.
type Surface struct {
	Type       string `yaml:"type" toml:"type"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	Autoplay   *bool  `yaml:"autoplay" toml:"autoplay"`
	Antialias  *bool  `yaml:"antialias" toml:"antialias"`
	Background *Color `yaml:"background" toml:"background"`
	Resolution int    `yaml:"resolution" toml:"resolution"`
}

// Load reads and decodes the document at path, picking the decoder from
// the file extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("scenefile: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &doc, nil
}

// Options converts the surface section into surface options.
func (d *Document) Options() []two.SurfaceOption {
	s := d.Surface
	var opts []two.SurfaceOption
	if s.Type != "" {
		opts = append(opts, two.WithType(backend.ParseType(s.Type)))
	}
	if s.Width > 0 || s.Height > 0 {
		w, h := s.Width, s.Height
		if w <= 0 {
			w = 640
		}
		if h <= 0 {
			h = 480
		}
		opts = append(opts, two.WithSize(w, h))
	}
	if s.Fullscreen {
		opts = append(opts, two.WithFullscreen(true))
	}
	if s.Autoplay != nil {
		opts = append(opts, two.WithAutoplay(*s.Autoplay))
	}
	if s.Antialias != nil {
		opts = append(opts, two.WithAntialias(*s.Antialias))
	}
	if s.Background != nil {
		opts = append(opts, two.WithBackground(s.Background.RGBA()))
	}
	if s.Resolution > 0 {
		opts = append(opts, two.WithResolution(s.Resolution))
	}
	return opts
}

// Build creates the document's shapes and adds them to s, in order.
// Nothing is added when any shape fails to build.
func (d *Document) Build(s *two.Surface) ([]two.Drawable, error) {
	f := two.Factory{Resolution: s.Resolution()}
	out := make([]two.Drawable, 0, len(d.Shapes))
	for i := range d.Shapes {
		dr, err := d.Shapes[i].Drawable(f)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, dr)
	}
	s.Add(out...)
	return out, nil
}

// Color is a color written as a hex string ("#rgb", "#rrggbb",
// "#rrggbbaa") or "none".
type Color gg.RGBA

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if strings.EqualFold(s, "none") || s == "" {
		*c = Color(gg.Transparent)
		return nil
	}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("scenefile: invalid color %q", s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("scenefile: invalid color %q", s)
		}
	}
	*c = Color(gg.Hex(h))
	return nil
}

// RGBA returns the color as a gg.RGBA.
func (c Color) RGBA() gg.RGBA { return gg.RGBA(c) }
