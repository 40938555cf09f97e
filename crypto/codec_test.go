package crypto

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		plain   string
		encoded string
	}{
		{"hello world", "aGVsbG8gd29ybGQ="},
		{"The quick brown fox jumps over the lazy dog", "VGhlIHF1aWNrIGJyb3duIGZveCBqdW1wcyBvdmVyIHRoZSBsYXp5IGRvZw=="},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.plain, func(t *testing.T) {
			if got := Base64Encode(tc.plain); got != tc.encoded {
				t.Errorf("Base64Encode(%q) = %q, want %q", tc.plain, got, tc.encoded)
			}
			got, ok := Base64Decode(tc.encoded)
			if !ok || got != tc.plain {
				t.Errorf("Base64Decode(%q) = %q, %v", tc.encoded, got, ok)
			}
		})
	}
}

func TestBase64DecodeInvalid(t *testing.T) {
	for _, in := range []string{"invalid base64!", "aGVsbG8", "/w=="} {
		if got, ok := Base64Decode(in); ok {
			t.Errorf("Base64Decode(%q) = %q, expected failure", in, got)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		plain   string
		encoded string
	}{
		{"hello", "68656c6c6f"},
		{"Hello World!", "48656c6c6f20576f726c6421"},
	}
	for _, tc := range tests {
		t.Run(tc.plain, func(t *testing.T) {
			if got := HexEncode(tc.plain); got != tc.encoded {
				t.Errorf("HexEncode(%q) = %q, want %q", tc.plain, got, tc.encoded)
			}
			got, ok := HexDecode(tc.encoded)
			if !ok || got != tc.plain {
				t.Errorf("HexDecode(%q) = %q, %v", tc.encoded, got, ok)
			}
		})
	}
}

func TestHexDecodeInvalid(t *testing.T) {
	for _, in := range []string{"invalid hex", "abc", "ff"} {
		if got, ok := HexDecode(in); ok {
			t.Errorf("HexDecode(%q) = %q, expected failure", in, got)
		}
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		plain   string
		encoded string
	}{
		{"hello world", "hello%20world"},
		{"hello@example.com", "hello%40example%2Ecom"},
		{"café", "caf%C3%A9"},
		{"a-b_c.d~e", "a%2Db%5Fc%2Ed%7Ee"},
		{"abcXYZ019", "abcXYZ019"},
	}
	for _, tc := range tests {
		t.Run(tc.plain, func(t *testing.T) {
			if got := URLEncode(tc.plain); got != tc.encoded {
				t.Errorf("URLEncode(%q) = %q, want %q", tc.plain, got, tc.encoded)
			}
			got, ok := URLDecode(tc.encoded)
			if !ok || got != tc.plain {
				t.Errorf("URLDecode(%q) = %q, %v", tc.encoded, got, ok)
			}
		})
	}
}

func TestURLDecode(t *testing.T) {
	if got, ok := URLDecode("a+b"); !ok || got != "a+b" {
		t.Errorf("URLDecode should keep '+', got %q, %v", got, ok)
	}
	for _, in := range []string{"%zz", "100%", "%C3"} {
		if got, ok := URLDecode(in); ok {
			t.Errorf("URLDecode(%q) = %q, expected failure", in, got)
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("base64 round-trips", prop.ForAll(
		func(s string) bool {
			got, ok := Base64Decode(Base64Encode(s))
			return ok && got == s
		},
		gen.AnyString(),
	))

	properties.Property("hex round-trips", prop.ForAll(
		func(s string) bool {
			got, ok := HexDecode(HexEncode(s))
			return ok && got == s
		},
		gen.AnyString(),
	))

	properties.Property("url encoding round-trips", prop.ForAll(
		func(s string) bool {
			got, ok := URLDecode(URLEncode(s))
			return ok && got == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
