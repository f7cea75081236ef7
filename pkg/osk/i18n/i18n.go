package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var embeddedMessages embed.FS

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	// fallback resolves IDs the active language does not translate.
	fallback *i18n.Localizer
	bundle   *i18n.Bundle
	lang     language.Tag
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

func loadEmbedded(bundle *i18n.Bundle) error {
	entries, err := embeddedMessages.ReadDir("messages")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := path.Join("messages", entry.Name())
		data, err := embeddedMessages.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func install(bundle *i18n.Bundle, lang language.Tag) {
	i = &I18N{
		localizer: i18n.NewLocalizer(bundle, lang.String(), language.English.String()),
		fallback:  i18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
		lang:      lang,
	}
}

// current returns the active localizer, loading the built-in messages the
// first time it is needed.
func current() *I18N {
	mu.RLock()
	loaded := i
	mu.RUnlock()
	if loaded != nil {
		return loaded
	}

	mu.Lock()
	defer mu.Unlock()
	if i == nil {
		bundle := newBundle()
		if err := loadEmbedded(bundle); err != nil {
			panic("osk: embedded messages are invalid: " + err.Error())
		}
		install(bundle, language.English)
	}
	return i
}

// InitI18N loads the built-in messages plus the given message files, which
// override built-in IDs.
func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()
	if err := loadEmbedded(bundle); err != nil {
		return err
	}

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	mu.Lock()
	install(bundle, language.English)
	mu.Unlock()

	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()
	if err := loadEmbedded(bundle); err != nil {
		return err
	}

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	mu.Lock()
	install(bundle, language.English)
	mu.Unlock()

	return nil
}

func SetLanguage(lang language.Tag) {
	bundle := current().bundle

	mu.Lock()
	install(bundle, lang)
	mu.Unlock()
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Language returns the active language tag.
func Language() language.Tag {
	return current().lang
}

// GetString retrieves a localized string by key, falling back to English
// when the active language lacks it. If neither has the key, the key itself
// is returned.
func GetString(key string) string {
	loaded := current()
	config := &i18n.LocalizeConfig{MessageID: key}

	msg, err := loaded.localizer.Localize(config)
	if err == nil {
		return msg
	}

	var notFound *i18n.MessageNotFoundErr
	if errors.As(err, &notFound) {
		if msg, err := loaded.fallback.Localize(config); err == nil {
			return msg
		}
	}
	return key
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// The DefaultMessage provides the message ID and fallback text.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current().localizer.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
