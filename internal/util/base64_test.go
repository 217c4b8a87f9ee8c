package util

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeBase64Payload_PaddedAndRaw(t *testing.T) {
	plain := []byte("ABCD1")
	padded := base64.StdEncoding.EncodeToString(plain)
	raw := base64.RawStdEncoding.EncodeToString(plain)

	if b, err := DecodeBase64Payload(padded); err != nil || string(b) != "ABCD1" {
		t.Fatalf("padded decode: %q %v", b, err)
	}
	if b, err := DecodeBase64Payload(raw); err != nil || string(b) != "ABCD1" {
		t.Fatalf("raw decode: %q %v", b, err)
	}
}

func TestDecodeBase64Payload_StripsDataURLPrefix(t *testing.T) {
	in := "data:audio/webm;codecs=opus;base64," + base64.StdEncoding.EncodeToString([]byte("webm"))

	b, err := DecodeBase64Payload(in)
	if err != nil || string(b) != "webm" {
		t.Fatalf("got %q err=%v", b, err)
	}
}

func TestDecodeBase64Payload_Malformed(t *testing.T) {
	if _, err := DecodeBase64Payload("%%%not-base64%%%"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeBase64Payload_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "data:audio/webm;base64,"} {
		if _, err := DecodeBase64Payload(in); !errors.Is(err, ErrEmptyPayload) {
			t.Fatalf("DecodeBase64Payload(%q) err=%v want ErrEmptyPayload", in, err)
		}
	}
}

func TestEncodeBase64_RoundTrip(t *testing.T) {
	b, err := DecodeBase64Payload(EncodeBase64([]byte{0xff, 0x00, 0x10}))
	if err != nil || len(b) != 3 || b[0] != 0xff {
		t.Fatalf("round trip failed: %v %v", b, err)
	}
}
