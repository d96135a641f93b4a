package bumpbar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// IconLoader resolves an icon reference from a menu file into a drawable handle.
type IconLoader interface {
	LoadIcon(ref string) (Icon, error)
}

type MenuFormat string

const (
	MenuFormatTOML MenuFormat = "toml"
	MenuFormatJSON MenuFormat = "json"
	MenuFormatYAML MenuFormat = "yaml"
)

// MenuFormatFromPath picks the format from the file extension.
func MenuFormatFromPath(path string) (MenuFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return MenuFormatTOML, nil
	case ".json":
		return MenuFormatJSON, nil
	case ".yaml", ".yml":
		return MenuFormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported menu file extension %q", ErrInvalidMenu, filepath.Ext(path))
	}
}

// MenuEntry is one item of a menu file. TitleID, when set and a translator is
// configured, replaces Title.
type MenuEntry struct {
	ID      string `toml:"id" json:"id" yaml:"id"`
	Title   string `toml:"title" json:"title" yaml:"title"`
	TitleID string `toml:"title_id" json:"title_id,omitempty" yaml:"title_id,omitempty"`
	Icon    string `toml:"icon" json:"icon" yaml:"icon"`
}

// Menu is the parsed form of a menu file.
//
// TOML:
//
//	selected_index = 2
//
//	[[item]]
//	id = "home"
//	title = "Home"
//	icon = "icons/home.svg"
type Menu struct {
	SelectedIndex *int        `toml:"selected_index" json:"selected_index,omitempty" yaml:"selected_index,omitempty"`
	Items         []MenuEntry `toml:"item" json:"items" yaml:"items"`
}

func ParseMenu(data []byte, format MenuFormat) (Menu, error) {
	var menu Menu
	var err error

	switch format {
	case MenuFormatTOML:
		err = toml.Unmarshal(data, &menu)
	case MenuFormatJSON:
		err = json.Unmarshal(data, &menu)
	case MenuFormatYAML:
		err = yaml.Unmarshal(data, &menu)
	default:
		return Menu{}, fmt.Errorf("%w: unsupported menu format %q", ErrInvalidMenu, format)
	}
	if err != nil {
		return Menu{}, fmt.Errorf("failed to parse %s menu: %w", format, err)
	}
	return menu, nil
}

func ReadMenuFile(path string) (Menu, error) {
	format, err := MenuFormatFromPath(path)
	if err != nil {
		return Menu{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, fmt.Errorf("failed to read menu file: %w", err)
	}

	return ParseMenu(data, format)
}

// PreviewMenu is the five item menu shown when no menu file is given.
func PreviewMenu() Menu {
	selected := 2
	return Menu{
		SelectedIndex: &selected,
		Items: []MenuEntry{
			{ID: "home", Title: "Home", TitleID: "menu_home", Icon: "home.svg"},
			{ID: "search", Title: "Search", TitleID: "menu_search", Icon: "search.svg"},
			{ID: "add", Title: "Add", TitleID: "menu_add", Icon: "add.svg"},
			{ID: "reaction", Title: "Reaction", TitleID: "menu_reaction", Icon: "reaction.svg"},
			{ID: "favorite", Title: "Favorite", TitleID: "menu_favorite", Icon: "favorite.svg"},
		},
	}
}

// SetMenu adopts a parsed menu. Icons that fail to load leave their entry
// without an icon, which SetItems then skips.
func (v *NavigationView) SetMenu(menu Menu) error {
	icons := make([]Icon, len(menu.Items))
	titles := make([]string, len(menu.Items))

	for i, entry := range menu.Items {
		titles[i] = entry.Title
		if v.titles != nil && entry.TitleID != "" {
			titles[i] = v.titles.Title(entry.TitleID, entry.Title)
		}

		if entry.Icon == "" {
			continue
		}
		if v.icons == nil {
			v.logger.Warn("No icon loader configured", "icon", entry.Icon)
			continue
		}

		icon, err := v.icons.LoadIcon(entry.Icon)
		if err != nil {
			v.logger.Warn("Failed to load menu icon", "icon", entry.Icon, "error", err)
			continue
		}
		icons[i] = icon
	}

	previous := v.store.InitialSelection()
	if menu.SelectedIndex != nil && v.store.Count() == 0 {
		v.store.SetInitialSelection(*menu.SelectedIndex)
	}

	if err := v.SetItems(icons, titles); err != nil {
		v.store.SetInitialSelection(previous)
		return err
	}
	return nil
}

// LoadMenu reads and adopts a menu file.
func (v *NavigationView) LoadMenu(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty menu path", ErrInvalidMenu)
	}

	menu, err := ReadMenuFile(path)
	if err != nil {
		return err
	}

	v.logger.Debug("Menu loaded", "path", path, "items", len(menu.Items))
	return v.SetMenu(menu)
}
