package i18n

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator localizes menu titles from go-i18n message files.
type Translator struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// NewTranslator loads message files from disk. langs lists the preferred
// languages, most preferred first; English is used when none is given.
func NewTranslator(messageFilePaths []string, langs ...string) (*Translator, error) {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return nil, fmt.Errorf("failed to load message file %s: %w", messageFile, err)
		}
	}

	return newTranslator(bundle, langs), nil
}

func NewTranslatorFromBytes(messageFiles []MessageFile, langs ...string) (*Translator, error) {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return nil, fmt.Errorf("failed to parse message file %s: %w", messageFile.Name, err)
		}
	}

	return newTranslator(bundle, langs), nil
}

func newTranslator(bundle *i18n.Bundle, langs []string) *Translator {
	if len(langs) == 0 {
		langs = []string{language.English.String()}
	}
	return &Translator{localizer: i18n.NewLocalizer(bundle, langs...), bundle: bundle}
}

func (t *Translator) SetLanguage(lang language.Tag) {
	t.localizer = i18n.NewLocalizer(t.bundle, lang.String())
}

func (t *Translator) SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	t.SetLanguage(lang)
	return nil
}

// Title returns the message for id, or fallback when there is none. A nil
// Translator always returns fallback.
func (t *Translator) Title(id, fallback string) string {
	if t == nil || id == "" {
		return fallback
	}

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
