package audio

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"
)

// Format is the PCM layout of a WAV stream.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Canonical is what the transcription stage expects: mono, 24 kHz, 16-bit.
var Canonical = Format{SampleRate: 24000, Channels: 1, BitDepth: 16}

// ReadFormat parses the WAV header in data.
func ReadFormat(data []byte) (Format, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return Format{}, fmt.Errorf("invalid wav: %w", err)
		}
		return Format{}, fmt.Errorf("invalid wav header")
	}
	return Format{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}, nil
}

func CheckFormat(data []byte, want Format) error {
	got, err := ReadFormat(data)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("wav is %d Hz/%d ch/%d bit, want %d Hz/%d ch/%d bit",
			got.SampleRate, got.Channels, got.BitDepth,
			want.SampleRate, want.Channels, want.BitDepth)
	}
	return nil
}
