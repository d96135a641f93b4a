package internal

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Style is the resolved, pixel-space configuration of a navigation bar.
type Style struct {
	Metrics           Metrics
	Theme             Theme
	AnimationDuration time.Duration
	Easing            constants.EasingCurve
	InitialIndex      int
}

func DefaultStyle(density Density) Style {
	return Style{
		Metrics:           DefaultMetrics(density),
		Theme:             DefaultTheme(density),
		AnimationDuration: constants.DefaultAnimationDuration,
		Easing:            constants.DefaultEasing,
	}
}

// StyleConfig is the on-disk form of Style: sizes in dp, colors as hex strings.
type StyleConfig struct {
	BackgroundColor     string  `koanf:"background_color"`
	BackgroundElevation float64 `koanf:"background_elevation"`
	CircleColor         string  `koanf:"circle_color"`
	CircleElevation     float64 `koanf:"circle_elevation"`
	ShadowColor         string  `koanf:"shadow_color"`
	SelectedIconColor   string  `koanf:"selected_icon_color"`
	UnselectedIconColor string  `koanf:"unselected_icon_color"`
	SelectedIconSize    float64 `koanf:"selected_icon_size"`
	UnselectedIconSize  float64 `koanf:"unselected_icon_size"`
	TextColor           string  `koanf:"text_color"`
	TextSize            float64 `koanf:"text_size"`
	TextMarginTop       float64 `koanf:"text_margin_top"`
	TextBold            *bool   `koanf:"text_bold"`
	FontPath            string  `koanf:"font_path"`

	AnimationDurationMs int    `koanf:"animation_duration_ms"`
	Easing              string `koanf:"easing"` // e.g. "overshoot", "fast_out_slow_in"
	SelectedIndex       int    `koanf:"selected_index"`
}

func DefaultStyleConfig() StyleConfig {
	bold := true
	return StyleConfig{
		BackgroundColor:     constants.DefaultBackgroundColorHex,
		BackgroundElevation: constants.DefaultShadowLayerDP,
		CircleColor:         constants.DefaultCircleColorHex,
		CircleElevation:     constants.DefaultShadowLayerDP,
		ShadowColor:         constants.DefaultShadowColorHex,
		SelectedIconColor:   constants.DefaultSelectedIconColorHex,
		UnselectedIconColor: constants.DefaultUnselectedIconHex,
		SelectedIconSize:    constants.DefaultSelectedIconSizeDP,
		UnselectedIconSize:  constants.DefaultUnselectedIconSizeDP,
		TextColor:           constants.DefaultTextColorHex,
		TextSize:            constants.DefaultTextSizeDP,
		TextMarginTop:       constants.DefaultTextMarginTopDP,
		TextBold:            &bold,
		AnimationDurationMs: int(constants.DefaultAnimationDuration / time.Millisecond),
		Easing:              constants.DefaultEasing.String(),
	}
}

// LoadStyleConfig layers $XDG_CONFIG_HOME/bumpbar/style.toml and then
// ./style.toml over the defaults. Missing files are skipped.
func LoadStyleConfig() (StyleConfig, error) {
	return loadStyleConfig(styleConfigPaths()...)
}

func LoadStyleConfigFile(path string) (StyleConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return StyleConfig{}, fmt.Errorf("style file %s: %w", path, err)
	}
	return loadStyleConfig(path)
}

func loadStyleConfig(paths ...string) (StyleConfig, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return StyleConfig{}, fmt.Errorf("failed to load style file %s: %w", path, err)
			}
		}
	}

	cfg := DefaultStyleConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return StyleConfig{}, fmt.Errorf("failed to decode style: %w", err)
	}
	return cfg, nil
}

func styleConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "bumpbar", "style.toml"),
		// Working directory wins.
		"style.toml",
	}
}

// Resolve converts the config to pixels with the given density.
func (c StyleConfig) Resolve(density Density) (Style, error) {
	style := DefaultStyle(density)

	var err error
	theme := &style.Theme
	if theme.BackgroundColor, err = parseOr(c.BackgroundColor, theme.BackgroundColor); err != nil {
		return Style{}, err
	}
	if theme.CircleColor, err = parseOr(c.CircleColor, theme.CircleColor); err != nil {
		return Style{}, err
	}
	if theme.ShadowColor, err = parseOr(c.ShadowColor, theme.ShadowColor); err != nil {
		return Style{}, err
	}
	if theme.SelectedIconColor, err = parseOr(c.SelectedIconColor, theme.SelectedIconColor); err != nil {
		return Style{}, err
	}
	if theme.UnselectedIconColor, err = parseOr(c.UnselectedIconColor, theme.UnselectedIconColor); err != nil {
		return Style{}, err
	}
	if theme.TextColor, err = parseOr(c.TextColor, theme.TextColor); err != nil {
		return Style{}, err
	}

	theme.BackgroundShadow = density.DpToPx(c.BackgroundElevation)
	theme.CircleShadow = density.DpToPx(c.CircleElevation)
	if c.TextBold != nil {
		theme.TextBold = *c.TextBold
	}
	theme.FontPath = c.FontPath

	m := &style.Metrics
	if c.SelectedIconSize > 0 {
		m.SelectedIconSize = density.DpToPx(c.SelectedIconSize)
	}
	if c.UnselectedIconSize > 0 {
		m.UnselectedIconSize = density.DpToPx(c.UnselectedIconSize)
	}
	if c.TextSize > 0 {
		m.TextSize = density.DpToPx(c.TextSize)
	}
	if c.TextMarginTop >= 0 {
		m.TextMarginTop = density.DpToPx(c.TextMarginTop)
	}

	if c.AnimationDurationMs >= 0 {
		style.AnimationDuration = time.Duration(c.AnimationDurationMs) * time.Millisecond
	}
	style.Easing = constants.ParseEasingCurve(c.Easing)
	style.InitialIndex = max(c.SelectedIndex, 0)

	return style, nil
}

func parseOr(hex string, fallback color.RGBA) (color.RGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	return ParseHexColor(hex)
}
