package internal

import (
	_ "embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locale/en.toml
var localeEN []byte

var (
	localizerOnce sync.Once
	localizer     *i18n.Localizer
)

func getLocalizer() *i18n.Localizer {
	localizerOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		bundle.MustParseMessageFileBytes(localeEN, "en.toml")
		localizer = i18n.NewLocalizer(bundle, language.English.String())
	})
	return localizer
}

// T resolves a built-in UI string by message ID. Unknown IDs return the
// ID itself so a missing translation never blanks a label.
func T(messageID string) string {
	message, err := getLocalizer().Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return message
}
