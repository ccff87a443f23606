package localization

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
)

const fallbackLang = "en"

// Localizer serves operator prompts and audience-facing messages from
// embedded JSON locale files, one file per language.
type Localizer struct {
	messages map[string]map[string]string
}

func NewLocalizer(dir fs.FS) *Localizer {
	messages := make(map[string]map[string]string)

	files, err := fs.ReadDir(dir, "locales")
	if err != nil {
		log.Fatalf("Failed to read locales directory: %v", err)
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		lang := strings.TrimSuffix(file.Name(), ".json")
		content, err := fs.ReadFile(dir, filepath.Join("locales", file.Name()))
		if err != nil {
			log.Printf("Failed to read locale file %s: %v", file.Name(), err)
			continue
		}
		var langMessages map[string]string
		if err := json.Unmarshal(content, &langMessages); err != nil {
			log.Printf("Failed to parse locale file %s: %v", file.Name(), err)
			continue
		}
		messages[lang] = langMessages
		log.Printf("Loaded language: %s", lang)
	}

	return &Localizer{messages: messages}
}

// GetMessage resolves a key for the given language, falling back to
// English and finally to the key itself.
func (l *Localizer) GetMessage(lang, key string) string {
	if message, ok := l.messages[lang][key]; ok {
		return message
	}
	if message, ok := l.messages[fallbackLang][key]; ok {
		return message
	}
	return key
}

// GetMessagef resolves a key and applies fmt arguments to it.
func (l *Localizer) GetMessagef(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(l.GetMessage(lang, key), args...)
}
