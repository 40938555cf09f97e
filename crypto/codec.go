package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// Base64Encode encodes s with the standard padded base64 alphabet.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard padded base64. It returns false when data is
// not valid base64 or does not decode to valid UTF-8.
func Base64Decode(data string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", false
	}
	return utf8String(raw)
}

// HexEncode encodes s as lowercase hexadecimal.
func HexEncode(s string) string {
	return hex.EncodeToString([]byte(s))
}

// HexDecode decodes hexadecimal text. It returns false when data is not
// valid hex or does not decode to valid UTF-8.
func HexDecode(data string) (string, bool) {
	raw, err := hex.DecodeString(data)
	if err != nil {
		return "", false
	}
	return utf8String(raw)
}

// URLEncode percent-encodes every byte of the UTF-8 form of s that is not an
// ASCII letter or digit.
//
//	crypto.URLEncode("hello@example.com") // "hello%40example%2Ecom"
func URLEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

// URLDecode reverses percent-encoding. '+' is left as is. It returns false
// for malformed escapes or when the result is not valid UTF-8.
func URLDecode(data string) (string, bool) {
	s, err := url.PathUnescape(data)
	if err != nil {
		return "", false
	}
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

func utf8String(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
