package language

import "hearthly-api/internal/apperror"

type Code string

const (
	English Code = "en"
	Hindi   Code = "hi"
	Punjabi Code = "pa"
)

// Supported lists every language the pipeline accepts, in a stable order.
var Supported = []Code{English, Hindi, Punjabi}

// Parse validates a raw language code. Anything outside the supported set is
// an InvalidLanguage failure.
func Parse(raw string) (Code, error) {
	switch c := Code(raw); c {
	case English, Hindi, Punjabi:
		return c, nil
	}
	return "", apperror.InvalidLanguage(raw)
}

func (c Code) Valid() bool {
	_, err := Parse(string(c))
	return err == nil
}
