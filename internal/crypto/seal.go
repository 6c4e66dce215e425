package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/box"
)

// Seal encrypts plaintext to the recipient's public key as an anonymous
// sealed box and returns it base64-encoded. The sender stays unlinkable:
// only an ephemeral key crosses the wire.
func Seal(recipient [32]byte, plaintext []byte) (string, error) {
	ct, err := box.SealAnonymous(nil, plaintext, &recipient, rand.Reader)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// Open decrypts a sealed box produced by Seal using the recipient's key
// pair.
func Open(pub, priv [32]byte, sealed string) ([]byte, error) {
	ct, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, errors.Wrap(err, "decode sealed payload")
	}
	pt, ok := box.OpenAnonymous(nil, ct, &pub, &priv)
	if !ok {
		return nil, errors.New("sealed payload did not open")
	}
	return pt, nil
}
