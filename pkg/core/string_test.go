package core_test

import (
	"testing"

	"github.com/mwantia/lumen/pkg/core"
)

func TestStringEqual(t *testing.T) {
	heap := core.NewHeap(0, 0)
	a := core.NewString(heap, "hello")
	b := core.NewString(heap, "hello")
	c := core.NewString(heap, "world")

	if !a.Equal(b) {
		t.Error("Equal(a, b) = false for identical content, want true")
	}
	if a.Equal(c) {
		t.Error("Equal(a, c) = true for different content, want false")
	}
}

func TestStringFindBoyerMooreHorspool(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             uint32
	}{
		{"hello world", "world", 6},
		{"hello world", "", 0},
		{"abcabcabc", "cab", 2},
	}
	for _, c := range cases {
		got := core.Find([]byte(c.haystack), []byte(c.needle))
		if got != c.want {
			t.Errorf("Find(%q, %q) = %d, want %d", c.haystack, c.needle, got, c.want)
		}
	}
}

func TestStringFindNotPresent(t *testing.T) {
	notFound := core.Find([]byte("a"), []byte("ab")) // needle longer than haystack, a known not-found case
	got := core.Find([]byte("hello world"), []byte("xyz"))
	if got != notFound {
		t.Errorf("Find for an absent needle = %d, want the not-found sentinel %d", got, notFound)
	}
}

func TestStringFindNeedleLongerThanHaystack(t *testing.T) {
	got := core.Find([]byte("ab"), []byte("abc"))
	want := core.Find([]byte("x"), []byte("xy"))
	if got != want {
		t.Errorf("Find with overlong needle = %d, want not-found sentinel %d", got, want)
	}
}

func TestUtf8RoundTrip(t *testing.T) {
	codePoints := []rune{'a', 0x00E9, 0x4E2D, 0x1F600}
	for _, cp := range codePoints {
		encoded := core.Utf8Encode(cp)
		decoded, n := core.Utf8Decode(encoded)
		if decoded != cp {
			t.Errorf("Utf8Decode(Utf8Encode(%U)) = %U, want %U", cp, decoded, cp)
		}
		if n != len(encoded) {
			t.Errorf("Utf8Decode byte length = %d, want %d", n, len(encoded))
		}
	}
}

func TestCodePointAt(t *testing.T) {
	heap := core.NewHeap(0, 0)
	s := core.NewString(heap, "a中b")

	cp := s.CodePointAt(heap, 1)
	if cp == nil {
		t.Fatal("CodePointAt(1) = nil, want the middle code point")
	}
	if cp.Value() != "中" {
		t.Errorf("CodePointAt(1).Value() = %q, want %q", cp.Value(), "中")
	}

	if s.CodePointAt(heap, 2) != nil {
		t.Error("CodePointAt on a continuation byte should return nil")
	}
}

func TestFormat(t *testing.T) {
	heap := core.NewHeap(0, 0)
	name := core.NewString(heap, "lumen")

	got, err := core.Format(heap, "hello $, @!", "there", name)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "hello there, lumen!"; got.Value() != want {
		t.Errorf("Format() = %q, want %q", got.Value(), want)
	}
}

func TestFormatMissingArgument(t *testing.T) {
	heap := core.NewHeap(0, 0)
	if _, err := core.Format(heap, "$"); err == nil {
		t.Error("Format with missing argument = nil error, want error")
	}
}
