package hasher

import (
	"bytes"
	"strings"
	"testing"
)

func TestContentHash_Length(t *testing.T) {
	if h := ContentHash([]byte("dither"), 0); len(h) != 16 {
		t.Errorf("full hash %q has %d chars", h, len(h))
	}
	if h := ContentHash([]byte("dither"), 8); len(h) != 8 {
		t.Errorf("truncated hash %q has %d chars", h, len(h))
	}
	if h := ContentHash([]byte("dither"), 40); len(h) != 16 {
		t.Errorf("over-long request gave %q", h)
	}
}

func TestContentHash_KnownValue(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if h := ContentHash(nil, 0); h != "ef46db3751d8e999" {
		t.Errorf("ContentHash(nil) = %s", h)
	}
}

func TestContentHashReader_MatchesBytes(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5}, 10000)
	got, err := ContentHashReader(bytes.NewReader(data), 12)
	if err != nil {
		t.Fatal(err)
	}
	if want := ContentHash(data, 12); got != want {
		t.Errorf("reader hash %s != bytes hash %s", got, want)
	}
}

func TestPixelFingerprint_IncludesGeometry(t *testing.T) {
	pix := make([]byte, 4*6*4)
	a := PixelFingerprint(pix, 4, 6)
	b := PixelFingerprint(pix, 6, 4)
	if a == b {
		t.Error("fingerprint ignores dimensions")
	}
	if a != PixelFingerprint(pix, 4, 6) {
		t.Error("fingerprint not deterministic")
	}
	if strings.Trim(a, "0123456789abcdef") != "" {
		t.Errorf("fingerprint %q is not hex", a)
	}
}
