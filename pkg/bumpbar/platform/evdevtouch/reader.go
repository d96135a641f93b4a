// Package evdevtouch reads taps from a Linux touchscreen and hands their X
// coordinate, in screen pixels, to the UI loop over a channel.
package evdevtouch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
	"github.com/adrg/xdg"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const (
	DeviceEnvVar      = "TOUCH_DEVICE"
	DefaultDevicePath = "/dev/input/event0"
	tapBuffer         = 8
	calibrationFile   = "bumpbar/touch_calibration.json"
)

type Calibration = internal.TouchCalibration

// Tap is a finger lift in window pixels. Y is NaN when the device has no
// vertical axis.
type Tap = internal.TouchPoint

// LoadCalibration reads a calibration saved as JSON.
func LoadCalibration(path string) (Calibration, error) {
	return internal.LoadTouchCalibrationFromJSON(path)
}

// LoadDefaultCalibration reads the calibration named by TOUCH_CALIBRATION_PATH,
// or the one saved under $XDG_CONFIG_HOME/bumpbar. ok is false when neither
// exists.
func LoadDefaultCalibration() (cal Calibration, ok bool, err error) {
	path := os.Getenv(internal.TouchCalibrationPathEnvVar)
	if path == "" {
		path, err = xdg.SearchConfigFile(calibrationFile)
		if err != nil {
			return Calibration{}, false, nil
		}
	}
	cal, err = LoadCalibration(path)
	return cal, err == nil, err
}

// SaveCalibration writes cal under $XDG_CONFIG_HOME/bumpbar and returns the path.
func SaveCalibration(cal Calibration) (string, error) {
	path, err := xdg.ConfigFile(calibrationFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve calibration path: %w", err)
	}
	return path, cal.SaveToJSON(path)
}

// DevicePath is TOUCH_DEVICE, or DefaultDevicePath when unset.
func DevicePath() string {
	if p := os.Getenv(DeviceEnvVar); p != "" {
		return p
	}
	return DefaultDevicePath
}

type Reader struct {
	device       *evdev.InputDevice
	calibration  Calibration
	screenWidth  *atomic.Float64
	screenHeight *atomic.Float64
	running      *atomic.Bool
	taps         chan Tap
	done         chan struct{}
	wg           sync.WaitGroup
	closeOnce    sync.Once
	logger       *slog.Logger

	lastX    int32
	lastY    int32
	touching bool
}

// Open opens the touchscreen at path. Axis ranges missing from calibration
// are taken from the ranges the device reports.
func Open(path string, calibration Calibration, screenWidth, screenHeight int32) (*Reader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open touch device %s: %w", path, err)
	}

	logger := internal.GetInternalLogger()

	if calibration.MaxX <= calibration.MinX || !calibration.HasY() {
		calibration, err = calibrateFromDevice(device, calibration)
		if err != nil {
			device.Close()
			return nil, fmt.Errorf("touch device %s: %w", path, err)
		}
	}

	name, _ := device.Name()
	logger.Debug("Touch device opened",
		"path", path,
		"name", name,
		"min_x", calibration.MinX,
		"max_x", calibration.MaxX,
		"min_y", calibration.MinY,
		"max_y", calibration.MaxY,
	)

	return newReader(device, calibration, screenWidth, screenHeight, logger), nil
}

func newReader(device *evdev.InputDevice, calibration Calibration, screenWidth, screenHeight int32, logger *slog.Logger) *Reader {
	return &Reader{
		device:       device,
		calibration:  calibration,
		screenWidth:  atomic.NewFloat64(float64(screenWidth)),
		screenHeight: atomic.NewFloat64(float64(screenHeight)),
		running:      atomic.NewBool(false),
		taps:         make(chan Tap, tapBuffer),
		done:         make(chan struct{}),
		logger:       logger,
	}
}

// calibrateFromDevice fills the axis ranges cal lacks. A missing Y axis is
// not an error; taps then carry a NaN Y.
func calibrateFromDevice(device *evdev.InputDevice, cal Calibration) (Calibration, error) {
	infos, err := device.AbsInfos()
	if err != nil {
		return cal, fmt.Errorf("failed to read axis ranges: %w", err)
	}

	if cal.MaxX <= cal.MinX {
		info, ok := infos[evdev.ABS_X]
		if !ok {
			return cal, errors.New("no ABS_X axis")
		}
		cal.MinX, cal.MaxX = info.Minimum, info.Maximum
	}
	if !cal.HasY() {
		if info, ok := infos[evdev.ABS_Y]; ok {
			cal.MinY, cal.MaxY = info.Minimum, info.Maximum
		}
	}
	return cal, nil
}

// Taps delivers one point per finger lift. It is closed when the reader
// stops.
func (r *Reader) Taps() <-chan Tap {
	return r.taps
}

// SetScreenSize updates the size raw coordinates are scaled to. Safe to call
// while the reader runs.
func (r *Reader) SetScreenSize(width, height int32) {
	r.screenWidth.Store(float64(width))
	r.screenHeight.Store(float64(height))
}

func (r *Reader) Running() bool {
	return r.running.Load()
}

// Start reads events on a goroutine until ctx is done or Close is called.
func (r *Reader) Start(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		return
	}

	r.wg.Add(1)
	go r.loop()
	go r.watch(ctx)
}

func (r *Reader) watch(ctx context.Context) {
	select {
	case <-ctx.Done():
		r.Close()
	case <-r.done:
	}
}

func (r *Reader) loop() {
	defer r.wg.Done()
	defer close(r.taps)

	for r.running.Load() {
		event, err := r.device.ReadOne()
		if err != nil {
			if r.running.Load() {
				r.logger.Error("Touch device read failed", "error", err)
			}
			return
		}
		r.handle(event)
	}
}

func (r *Reader) handle(event *evdev.InputEvent) {
	switch event.Type {
	case evdev.EV_ABS:
		switch event.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			r.lastX = event.Value
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			r.lastY = event.Value
		}
	case evdev.EV_KEY:
		if event.Code != evdev.BTN_TOUCH {
			return
		}
		if event.Value != 0 {
			r.touching = true
			return
		}
		if r.touching {
			r.touching = false
			r.emit(r.calibration.ToPoint(r.lastX, r.lastY, r.screenWidth.Load(), r.screenHeight.Load()))
		}
	}
}

func (r *Reader) emit(tap Tap) {
	select {
	case r.taps <- tap:
	default:
		r.logger.Warn("Dropping touch, UI loop is behind", "x", tap.X, "y", tap.Y)
	}
}

// Close stops the reader and waits for its goroutine to exit. It is safe to
// call more than once.
func (r *Reader) Close() {
	wasRunning := r.running.Swap(false)
	r.closeOnce.Do(func() {
		close(r.done)
		if r.device == nil {
			return
		}
		if err := r.device.Close(); err != nil {
			r.logger.Debug("Touch device close failed", "error", err)
		}
	})
	if wasRunning {
		r.wg.Wait()
	}
}
