package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"image/color"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/i18n"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/platform/evdevtouch"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/platform/sdlsurface"
)

//go:embed assets/icons/*.svg
var icons embed.FS

//go:embed assets/i18n/*.toml
var messages embed.FS

func main() {
	menuPath := flag.String("menu", "", "menu file (toml, json or yaml); the preview menu is used when empty")
	stylePath := flag.String("style", "", "style file; defaults to the layered style.toml lookup")
	lang := flag.String("lang", "en", "title language")
	easing := flag.String("easing", "", "easing curve, e.g. overshoot or fast_out_slow_in")
	touch := flag.Bool("touch", false, "read taps from the evdev touchscreen in TOUCH_DEVICE")
	flag.Parse()

	bumpbar.SetLogFilename("bumpbar-demo.log")
	logger := bumpbar.GetLogger()
	defer bumpbar.CloseLogger()

	if constants.IsDevMode() {
		bumpbar.SetRawLogLevel("debug")
	}

	if err := run(*menuPath, *stylePath, *lang, *easing, *touch); err != nil {
		logger.Error("Demo failed", "error", err)
		os.Exit(1)
	}
}

func run(menuPath, stylePath, lang, easing string, useTouch bool) error {
	logger := bumpbar.GetLogger()

	if err := sdlsurface.Init(); err != nil {
		return err
	}
	defer sdlsurface.Quit()

	window, err := sdlsurface.NewWindow("bumpbar")
	if err != nil {
		return err
	}
	defer window.Close()

	density := bumpbar.DensityFromWidth(window.Width())

	var style bumpbar.Style
	if stylePath != "" {
		style, err = bumpbar.LoadStyleFile(stylePath, density)
	} else {
		style, err = bumpbar.LoadStyle(density)
	}
	if err != nil {
		return err
	}
	if easing != "" {
		style.Easing = constants.ParseEasingCurve(easing)
	}

	font, err := sdlsurface.OpenFont(style.Theme.FontPath, style.Metrics.TextSize)
	if err != nil {
		return err
	}
	defer font.Close()
	font.SetBold(style.Theme.TextBold)

	iconFS, err := fs.Sub(icons, "assets/icons")
	if err != nil {
		return err
	}
	var iconSource fs.FS = iconFS
	if menuPath != "" {
		iconSource = nil
	}
	loader := sdlsurface.NewIconLoader(window.Renderer, iconSource, style.Metrics.SelectedIconSize)
	defer loader.Close()

	translator, err := loadTranslator(lang)
	if err != nil {
		return err
	}

	var view *bumpbar.NavigationView
	view = bumpbar.NewNavigationView(bumpbar.Options{
		Style:      style,
		Measurer:   font,
		IconLoader: loader,
		Translator: translator,
		Logger:     logger,
		OnItemSelected: func(index int) {
			item, _ := view.Item(index)
			logger.Info("Item selected", "index", index, "title", item.Title)
		},
	})

	if menuPath != "" {
		err = view.LoadMenu(menuPath)
	} else {
		err = view.SetMenu(bumpbar.PreviewMenu())
	}
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := sdlsurface.RunOptions{Background: color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}}
	if useTouch {
		reader, err := openTouch(window.Width(), window.Height())
		if err != nil {
			return err
		}
		defer reader.Close()
		reader.Start(ctx)
		opts.Touches = reader.Taps()
	}

	err = sdlsurface.Run(ctx, window, view, sdlsurface.NewSurface(window.Renderer, font), opts)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func loadTranslator(lang string) (*i18n.Translator, error) {
	entries, err := fs.ReadDir(messages, "assets/i18n")
	if err != nil {
		return nil, err
	}

	files := make([]i18n.MessageFile, 0, len(entries))
	for _, entry := range entries {
		content, err := fs.ReadFile(messages, "assets/i18n/"+entry.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, i18n.MessageFile{Name: entry.Name(), Content: content})
	}

	return i18n.NewTranslatorFromBytes(files, lang, "en")
}

func openTouch(screenWidth, screenHeight int32) (*evdevtouch.Reader, error) {
	calibration, _, err := evdevtouch.LoadDefaultCalibration()
	if err != nil {
		bumpbar.GetLogger().Warn("Ignoring touch calibration", "error", err)
	}
	return evdevtouch.Open(evdevtouch.DevicePath(), calibration, screenWidth, screenHeight)
}
