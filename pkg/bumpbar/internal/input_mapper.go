package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

const TouchCalibrationPathEnvVar = "TOUCH_CALIBRATION_PATH"

// MapTouch converts a horizontal touch coordinate into an item index. ok is
// false when no item sits under x.
func MapTouch(x, viewWidth float64, count int) (int, bool) {
	if count <= 0 || viewWidth <= 0 || math.IsNaN(x) {
		return 0, false
	}

	section := viewWidth / float64(count)
	index := int(math.Floor(x / section))
	if index < 0 || index >= count {
		return 0, false
	}
	return index, true
}

// TouchPoint is a tap in window pixels. Y is NaN when the source has no
// vertical axis.
type TouchPoint struct {
	X, Y float64
}

// TouchCalibration maps raw touchscreen axis values onto view coordinates.
// The Y range is optional.
type TouchCalibration struct {
	MinX   int32 `json:"min_x"`
	MaxX   int32 `json:"max_x"`
	Invert bool  `json:"invert"`
	MinY   int32 `json:"min_y,omitempty"`
	MaxY   int32 `json:"max_y,omitempty"`
	// OffsetX is where the bar starts on the touch panel, in view pixels.
	OffsetX float64 `json:"offset_x"`
}

func DefaultTouchCalibration(minX, maxX int32) TouchCalibration {
	return TouchCalibration{MinX: minX, MaxX: maxX}
}

// Normalize returns raw as a fraction of the calibrated range, clamped to [0, 1].
func (c TouchCalibration) Normalize(raw int32) float64 {
	span := float64(c.MaxX - c.MinX)
	if span <= 0 {
		return 0
	}

	f := ClampUnit(float64(raw-c.MinX) / span)
	if c.Invert {
		f = 1 - f
	}
	return f
}

// ToView maps raw into the coordinate space of a view screenWidth pixels wide.
func (c TouchCalibration) ToView(raw int32, screenWidth float64) float64 {
	return c.Normalize(raw)*screenWidth - c.OffsetX
}

// HasY reports whether the calibration carries a vertical range.
func (c TouchCalibration) HasY() bool {
	return c.MaxY > c.MinY
}

// ToViewY maps raw onto a screen screenHeight pixels tall, or returns NaN
// without a vertical range.
func (c TouchCalibration) ToViewY(raw int32, screenHeight float64) float64 {
	if !c.HasY() {
		return math.NaN()
	}
	return ClampUnit(float64(raw-c.MinY)/float64(c.MaxY-c.MinY)) * screenHeight
}

// ToPoint maps a raw (x, y) sample into window pixels.
func (c TouchCalibration) ToPoint(rawX, rawY int32, screenWidth, screenHeight float64) TouchPoint {
	return TouchPoint{X: c.ToView(rawX, screenWidth), Y: c.ToViewY(rawY, screenHeight)}
}

func LoadTouchCalibrationFromJSON(filePath string) (TouchCalibration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TouchCalibration{}, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadTouchCalibrationFromBytes(data)
}

func LoadTouchCalibrationFromBytes(data []byte) (TouchCalibration, error) {
	var cal TouchCalibration
	if err := json.Unmarshal(data, &cal); err != nil {
		return TouchCalibration{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if cal.MaxX <= cal.MinX {
		return TouchCalibration{}, fmt.Errorf("invalid calibration range [%d, %d]", cal.MinX, cal.MaxX)
	}
	return cal, nil
}

func (c TouchCalibration) SaveToJSON(filePath string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal calibration to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
