package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/validator.v2"

	"github.com/depeter/posterfx/internal/fx"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	View     ViewConfig    `toml:"view"`
	Demo     DemoConfig    `toml:"demo"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width" validate:"min=320"`
	Height     int  `toml:"height" validate:"min=240"`
}

// ViewConfig mirrors fx.Options in file-friendly units. Empty colour strings
// leave the colour unset.
type ViewConfig struct {
	AnimDurationMs        int       `toml:"anim_duration_ms" validate:"min=0"`
	OverlayTintDurationMs int       `toml:"overlay_tint_duration_ms" validate:"min=0"`
	RippleDurationMs      int       `toml:"ripple_duration_ms" validate:"min=0"`
	RippleColor           string    `toml:"ripple_color" validate:"regexp=^(#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?)?$"`
	RippleAlpha           int       `toml:"ripple_alpha" validate:"min=1,max=255"`
	DisableRipple         bool      `toml:"disable_ripple"`
	RippleDragCancel      bool      `toml:"ripple_drag_cancel"`
	RippleRestart         bool      `toml:"ripple_restart"`
	Selectable            bool      `toml:"selectable"`
	Shimmering            bool      `toml:"shimmering"`
	OverlayTinting        bool      `toml:"overlay_tinting"`
	OverlayTint           string    `toml:"overlay_tint" validate:"regexp=^(#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?)?$"`
	OverlaySecondaryTint  string    `toml:"overlay_secondary_tint" validate:"regexp=^(#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?)?$"`
	OverlayPadding        float64   `toml:"overlay_padding" validate:"min=0"`
	BackgroundColor       string    `toml:"background_color" validate:"regexp=^(#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?)?$"`
	CornerRadius          float64   `toml:"corner_radius" validate:"min=0"`
	CornerRadii           []float64 `toml:"corner_radii,omitempty" validate:"max=8"`
	ScaleType             string    `toml:"scale_type" validate:"regexp=^(fit_center|center_crop|fit_xy)$"`
	TintBlend             string    `toml:"tint_blend" validate:"regexp=^(argb|lab)$"`
	TouchSlop             float64   `toml:"touch_slop" validate:"min=0"`
	LongPressMs           int       `toml:"long_press_ms" validate:"min=0"`
	ShimmerDurationMs     int       `toml:"shimmer_duration_ms" validate:"min=0"`
}

type DemoConfig struct {
	Columns     int `toml:"columns" validate:"min=1,max=12"`
	Rows        int `toml:"rows" validate:"min=1,max=12"`
	CellWidth   int `toml:"cell_width" validate:"min=40"`
	CellHeight  int `toml:"cell_height" validate:"min=40"`
	Gap         int `toml:"gap" validate:"min=0"`
	LoadDelayMs int `toml:"load_delay_ms" validate:"min=0"`
}

type KeybindConfig struct {
	ToggleShimmer string `toml:"toggle_shimmer" validate:"nonzero"`
	ToggleTint    string `toml:"toggle_tint" validate:"nonzero"`
	Reload        string `toml:"reload" validate:"nonzero"`
	Debug         string `toml:"debug" validate:"nonzero"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		View: ViewConfig{
			AnimDurationMs:        1200,
			OverlayTintDurationMs: 700,
			RippleDurationMs:      240,
			RippleColor:           "#FFFFFF",
			RippleAlpha:           50,
			RippleDragCancel:      true,
			RippleRestart:         true,
			Selectable:            true,
			Shimmering:            true,
			OverlayTinting:        true,
			OverlayTint:           "#9E9E9E",
			OverlaySecondaryTint:  "#5C5C5C",
			OverlayPadding:        0,
			BackgroundColor:       "#808080",
			CornerRadius:          12,
			ScaleType:             "center_crop",
			TintBlend:             "argb",
			TouchSlop:             8,
			LongPressMs:           500,
			ShimmerDurationMs:     1000,
		},
		Demo: DemoConfig{
			Columns:     4,
			Rows:        2,
			CellWidth:   220,
			CellHeight:  330,
			Gap:         24,
			LoadDelayMs: 5000,
		},
		Keybinds: KeybindConfig{
			ToggleShimmer: "S",
			ToggleTint:    "T",
			Reload:        "R",
			Debug:         "F12",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "posterfx"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file over the defaults. A missing file is not an
// error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if n := len(c.View.CornerRadii); n != 0 && n != 8 {
		return fmt.Errorf("invalid config: view.corner_radii needs 8 values, got %d", n)
	}
	return nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Options converts the section into view options. The overlay content is left
// for the caller.
func (v ViewConfig) Options() (fx.Options, error) {
	o := fx.DefaultOptions()
	o.AnimDuration = ms(v.AnimDurationMs)
	o.TintDuration = ms(v.OverlayTintDurationMs)
	o.RippleDuration = ms(v.RippleDurationMs)
	o.RippleAlpha = uint8(v.RippleAlpha)
	o.DisableRipple = v.DisableRipple
	o.NoRippleDragCancel = !v.RippleDragCancel
	o.NoRippleRestart = !v.RippleRestart
	o.Selectable = v.Selectable
	o.Shimmering = v.Shimmering
	o.OverlayTinting = v.OverlayTinting
	o.OverlayPadding = v.OverlayPadding
	o.TouchSlop = v.TouchSlop
	o.LongPressTimeout = ms(v.LongPressMs)
	o.ShimmerDuration = ms(v.ShimmerDurationMs)

	colors := []struct {
		key string
		val string
		dst *color.Color
	}{
		{"ripple_color", v.RippleColor, &o.RippleColor},
		{"overlay_tint", v.OverlayTint, &o.OverlayTint},
		{"overlay_secondary_tint", v.OverlaySecondaryTint, &o.OverlaySecondaryTint},
		{"background_color", v.BackgroundColor, &o.BackgroundColor},
	}
	for _, c := range colors {
		parsed, err := ParseColor(c.val)
		if err != nil {
			return o, fmt.Errorf("view.%s: %w", c.key, err)
		}
		*c.dst = parsed
	}

	switch len(v.CornerRadii) {
	case 0:
		for i := range o.CornerRadii {
			o.CornerRadii[i] = v.CornerRadius
		}
	case 8:
		copy(o.CornerRadii[:], v.CornerRadii)
	default:
		return o, fmt.Errorf("view.corner_radii: need 8 values, got %d", len(v.CornerRadii))
	}

	switch v.ScaleType {
	case "", "fit_center":
		o.ScaleType = fx.ScaleFitCenter
	case "center_crop":
		o.ScaleType = fx.ScaleCenterCrop
	case "fit_xy":
		o.ScaleType = fx.ScaleFitXY
	default:
		return o, fmt.Errorf("view.scale_type: unknown %q", v.ScaleType)
	}

	switch v.TintBlend {
	case "", "argb":
		o.TintBlend = fx.LerpARGB
	case "lab":
		o.TintBlend = fx.LerpLab
	default:
		return o, fmt.Errorf("view.tint_blend: unknown %q", v.TintBlend)
	}
	return o, nil
}

// ParseColor accepts #RRGGBB and #AARRGGBB. The empty string is the unset
// colour and yields nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad alpha in %q", s)
		}
		alpha = uint8(a)
		s = "#" + s[3:]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := fx.NRGBA(c)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
