package bumpbar

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/constants"
	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
)

// MenuSource records how the store was populated.
type MenuSource int

const (
	MenuSourceNone MenuSource = iota
	MenuSourceManual
	MenuSourceResource
)

func (s MenuSource) String() string {
	switch s {
	case MenuSourceManual:
		return "manual"
	case MenuSourceResource:
		return "resource"
	default:
		return "none"
	}
}

// unsetCenterX marks a circle position that has not been computed yet.
const unsetCenterX = -1

// centerXSet reports whether x is a usable circle position. Zero and negative
// positions are valid while a curve overshoots the left edge.
func centerXSet(x float64) bool {
	return x != unsetCenterX && !math.IsNaN(x) && !math.IsInf(x, 0)
}

// TransitionRequest is produced by a selection change and consumed by the
// TransitionEngine.
type TransitionRequest struct {
	From int
	To   int
}

// ItemStore is the fixed-capacity item array plus selection state. Slots at
// or beyond Count hold cleared items at unselected rest.
type ItemStore struct {
	items    [constants.MaxItems]MenuItem
	count    int
	selected int
	initial  int
	source   MenuSource
	centerX  float64
	rest     RestValues
	logger   *slog.Logger
}

func NewItemStore(rest RestValues, logger *slog.Logger) *ItemStore {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	s := &ItemStore{
		rest:    rest,
		logger:  logger,
		centerX: unsetCenterX,
	}
	s.Clear()
	return s
}

func (s *ItemStore) Count() int            { return s.count }
func (s *ItemStore) Selected() int         { return s.selected }
func (s *ItemStore) Source() MenuSource    { return s.source }
func (s *ItemStore) Rest() RestValues      { return s.rest }
func (s *ItemStore) CenterX() float64      { return s.centerX }
func (s *ItemStore) setCenterX(x float64)  { s.centerX = x }
func (s *ItemStore) slot(i int) *MenuItem  { return &s.items[i] }
func (s *ItemStore) InitialSelection() int { return s.initial }

// Item returns a copy of the item in slot i.
func (s *ItemStore) Item(i int) (MenuItem, bool) {
	if i < 0 || i >= s.count {
		return MenuItem{}, false
	}
	return s.items[i], true
}

// Items returns copies of the populated slots.
func (s *ItemStore) Items() []MenuItem {
	out := make([]MenuItem, s.count)
	copy(out, s.items[:s.count])
	return out
}

// SetInitialSelection sets the index selected when a resource menu is adopted
// into an empty store. Out-of-range values fall back to 0 at adoption time.
func (s *ItemStore) SetInitialSelection(index int) {
	s.initial = index
}

// SetItems replaces the whole menu with resource-provided entries. Entries
// with a nil icon or a blank title are skipped; the number skipped is
// returned. Nothing changes when an error is returned.
func (s *ItemStore) SetItems(icons []Icon, titles []string) (int, error) {
	if len(icons) != len(titles) {
		return 0, fmt.Errorf("%w: %d icons for %d titles", ErrInvalidMenu, len(icons), len(titles))
	}
	if s.source == MenuSourceManual && s.count > 0 {
		return 0, fmt.Errorf("%w: items were added manually, clear them before setting a menu", ErrModeConflict)
	}

	validIcons := make([]Icon, 0, len(icons))
	validTitles := make([]string, 0, len(titles))
	for i := range icons {
		if icons[i] == nil || strings.TrimSpace(titles[i]) == "" {
			s.logger.Warn("Menu item invalid, skipping", "index", i, "title", titles[i], "has_icon", icons[i] != nil)
			continue
		}
		validIcons = append(validIcons, icons[i])
		validTitles = append(validTitles, titles[i])
	}

	n := len(validIcons)
	if n == 0 {
		return 0, fmt.Errorf("%w: no menu item has both an icon and a title", ErrInvalidMenu)
	}
	if n > constants.MaxItems {
		return 0, fmt.Errorf("%w: %d valid items, at most %d allowed", ErrInvalidMenu, n, constants.MaxItems)
	}

	selected := s.selected
	if s.count == 0 {
		selected = s.initial
	}
	if selected < 0 || selected >= n {
		selected = 0
	}

	s.clearSlots()
	for i := 0; i < n; i++ {
		s.items[i].Icon = validIcons[i]
		s.items[i].Title = validTitles[i]
	}
	s.count = n
	s.selected = selected
	s.source = MenuSourceResource
	s.ResetAttributes()

	return len(icons) - n, nil
}

// AddItem appends one item. The first item added is selected right away.
func (s *ItemStore) AddItem(icon Icon, title string) error {
	if s.source == MenuSourceResource {
		return fmt.Errorf("%w: a menu resource is set, clear it before adding items", ErrModeConflict)
	}
	if s.count >= constants.MaxItems {
		return fmt.Errorf("%w: cannot add more than %d items", ErrCapacity, constants.MaxItems)
	}

	slot := &s.items[s.count]
	slot.Icon = icon
	slot.Title = title
	slot.setAttributes(s.rest.unselected())
	s.count++
	s.source = MenuSourceManual

	if s.count == 1 {
		s.selected = 0
		s.items[0].setAttributes(s.rest.selected())
	}
	return nil
}

// Clear empties the store and forgets how it was populated.
func (s *ItemStore) Clear() {
	s.clearSlots()
	s.count = 0
	s.selected = 0
	s.source = MenuSourceNone
}

func (s *ItemStore) clearSlots() {
	for i := range s.items {
		s.items[i] = MenuItem{}
		s.items[i].setAttributes(s.rest.unselected())
	}
}

// Select moves the selection to index and returns the transition to play. A
// request for the current index is only produced while a transition is still
// in flight, so the animation can settle on it again.
func (s *ItemStore) Select(index int, inFlight bool) (TransitionRequest, bool) {
	if index < 0 || index >= s.count {
		return TransitionRequest{}, false
	}
	if index == s.selected && !inFlight {
		return TransitionRequest{}, false
	}

	req := TransitionRequest{From: s.selected, To: index}
	s.selected = index
	return req, true
}

// SetRest changes the rest values. Callers decide whether to snap the
// current attributes with ResetAttributes.
func (s *ItemStore) SetRest(rest RestValues) {
	s.rest = rest
}

// ResetAttributes snaps every slot to its rest state.
func (s *ItemStore) ResetAttributes() {
	for i := range s.items {
		s.items[i].setAttributes(s.rest.forSelection(i < s.count && i == s.selected))
	}
}
