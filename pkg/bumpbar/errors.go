package bumpbar

import "errors"

var (
	// ErrInvalidMenu is returned when a menu has no valid items, too many
	// items, mismatched icon and title lists, or an empty resource reference.
	ErrInvalidMenu = errors.New("invalid menu")

	// ErrModeConflict is returned when manual and resource-driven population
	// are mixed without clearing the bar first.
	ErrModeConflict = errors.New("menu population mode conflict")

	// ErrCapacity is returned when adding an item to a full bar.
	ErrCapacity = errors.New("navigation bar is full")
)
