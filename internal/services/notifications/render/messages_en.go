package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English
	for key, value := range englishLabels {
		message.SetString(lang, key, value)
	}
}
