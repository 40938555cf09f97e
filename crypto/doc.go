// Package crypto provides string-in, string-out hashing and encoding helpers
// plus a small authenticated symmetric cipher.
//
// Hash functions return lowercase hex digests. Encoders follow RFC 4648
// (base64, hex) and RFC 3986 percent-encoding. Decoders report malformed
// input through their boolean result instead of an error:
//
//	s, ok := crypto.Base64Decode("aGVsbG8gd29ybGQ=") // "hello world", true
//	_, ok = crypto.HexDecode("invalid hex")          // "", false
package crypto
