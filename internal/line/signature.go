package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// SignatureHeader is the request header carrying the Base64-encoded
// HMAC-SHA256 digest of the raw webhook body.
const SignatureHeader = "x-line-signature"

// ValidateSignature reports whether header is the standard-Base64 encoding of
// HMAC-SHA256(secret, body). It fails closed: an absent or undecodable header
// never validates. The comparison is constant-time.
func ValidateSignature(secret string, body []byte, header string) bool {
	if header == "" {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := mac.Sum(nil)
	return subtle.ConstantTimeCompare(expected, decoded) == 1
}

// Sign returns the signature header value for body under secret. Used by
// tests and by clients that need to produce valid webhook deliveries.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
