// Package persona composes the Hearthly system prompt from a fixed
// instruction corpus.
//
// The prompt is always built in the same order: the shared preamble, the
// language's cultural guidance, exactly one tone block, and the Gen Z
// overlay when requested. Blocks are concatenated as stored, with no
// separators, so identical inputs always produce identical bytes.
package persona

import (
	"strings"

	"hearthly-api/internal/language"
)

type Tone int

const (
	ToneBase Tone = iota
	ToneSarcastic
	ToneShenanigan
	ToneSeductive
)

func (t Tone) String() string {
	switch t {
	case ToneSarcastic:
		return "sarcastic"
	case ToneShenanigan:
		return "shenanigan"
	case ToneSeductive:
		return "seductive"
	default:
		return "base"
	}
}

// Modes are the request's persona flags. GenZ is an overlay; the other
// three compete for the single tone slot, see SelectTone.
type Modes struct {
	GenZ       bool
	Sarcastic  bool
	Shenanigan bool
	Seductive  bool
}

// tonePriority is checked top to bottom; the first set flag wins.
var tonePriority = []struct {
	tone Tone
	set  func(Modes) bool
}{
	{ToneSeductive, func(m Modes) bool { return m.Seductive }},
	{ToneShenanigan, func(m Modes) bool { return m.Shenanigan }},
	{ToneSarcastic, func(m Modes) bool { return m.Sarcastic }},
}

// SelectTone picks the tone for m: seductive, then shenanigan, then
// sarcastic, falling back to base.
func SelectTone(m Modes) Tone {
	for _, p := range tonePriority {
		if p.set(m) {
			return p.tone
		}
	}
	return ToneBase
}

// Build returns the system instructions for lang and modes. The only
// failure is an unsupported language.
func Build(lang language.Code, modes Modes) (string, error) {
	if _, err := language.Parse(string(lang)); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(culturalGuidance[lang])
	b.WriteString(toneBlocks[lang][SelectTone(modes)])
	if modes.GenZ {
		b.WriteString(genZOverlay[lang])
	}
	return b.String(), nil
}
