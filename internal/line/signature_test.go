package line

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignatureRoundTrip(t *testing.T) {
	t.Parallel()

	secret := "channel-secret"
	body := []byte(`{"events":[]}`)

	assert.True(t, ValidateSignature(secret, body, Sign(secret, body)))
}

func TestValidateSignatureBitFlip(t *testing.T) {
	t.Parallel()

	secret := "channel-secret"
	body := []byte(`{"events":[{"type":"message"}]}`)
	sig := Sign(secret, body)

	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		assert.False(t, ValidateSignature(secret, mutated, sig), "flipped byte %d", i)
	}
}

func TestValidateSignatureWrongSecret(t *testing.T) {
	t.Parallel()

	body := []byte("payload")
	assert.False(t, ValidateSignature("other-secret", body, Sign("channel-secret", body)))
}

func TestValidateSignatureFailsClosed(t *testing.T) {
	t.Parallel()

	body := []byte("payload")
	assert.False(t, ValidateSignature("secret", body, ""))
	assert.False(t, ValidateSignature("secret", body, "not base64 !!!"))
	// Valid base64 of the wrong bytes.
	assert.False(t, ValidateSignature("secret", body, base64.StdEncoding.EncodeToString([]byte("nope"))))
}
