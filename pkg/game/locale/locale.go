// Package locale looks up UI strings by message key from the embedded
// gettext catalogues.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

//go:embed po/*.po
var catalogues embed.FS

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// messages maps message keys to the loaded catalogue's text.
var messages map[string]string

// Load parses the embedded catalogue for lang.
func Load(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogues.ReadFile("po/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("locale %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)

	trs := po.GetDomain().GetTranslations()
	loaded := make(map[string]string, len(trs))
	for id, tr := range trs {
		if id != "" {
			loaded[id] = tr.Get()
		}
	}
	messages = loaded
	return nil
}

// Get returns the text for key, or key itself when the catalogue lacks it.
// Texts taking arguments are fmt templates; use Getf for those.
func Get(key string) string {
	if messages == nil {
		if err := Load(DefaultLanguage); err != nil {
			return key
		}
	}
	if s, ok := messages[key]; ok {
		return s
	}
	return key
}

// Getf formats the template for key with args.
func Getf(key string, args ...interface{}) string {
	return fmt.Sprintf(Get(key), args...)
}
