// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/cli"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of an [App]. Defaults come from the
// default struct tags, set with [cli.SetFromDefaults].
type Config struct {

	// Title is the window or document title.
	Title string `default:"Famine"`

	// Width is the requested window width in pixels.
	Width int `default:"640"`

	// Height is the requested window height in pixels.
	Height int `default:"480"`

	// AssetPrefix is prepended to image names to locate them.
	AssetPrefix string `default:"assets/"`

	// Texture is the name of the image wrapped around the sphere.
	Texture string `default:"earth.png"`

	// AsyncTexture starts drawing before the texture has loaded,
	// instead of waiting for it during setup.
	AsyncTexture bool

	// Radius is the sphere radius in model units.
	Radius float32 `default:"0.5"`

	// Rings is the number of latitude bands of the sphere.
	Rings int `default:"32"`

	// Slices is the number of longitude segments of the sphere.
	Slices int `default:"32"`

	// RotationStep is the rotation added per update, in radians.
	RotationStep float32 `default:"0.02"`

	// Background is the clear color as a hex string.
	Background string `default:"#000000"`

	// Diagnostics draws the frame counter over the scene.
	Diagnostics bool

	// FontScale is the integer enlargement of the glyph atlas.
	FontScale int `default:"1"`

	// Surface is the desktop window provider: glfw or corelib.
	Surface string `default:"glfw"`

	// CoreLibrary is the path of the native core library
	// for the corelib surface.
	CoreLibrary string

	// MaxFrames stops the offscreen driver after this many frames.
	MaxFrames int

	// NoGUI selects the offscreen driver instead of opening a window.
	NoGUI bool `flag:"nogui"`
}

// NewConfig returns a config with all defaults set.
func NewConfig() *Config {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// OpenConfig returns the defaults overridden by the given TOML or
// YAML file, chosen by its extension.
func OpenConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("app: unsupported config file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("app: reading %s: %w", filename, err)
	}
	return cfg, nil
}

// Size returns the requested window size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}
