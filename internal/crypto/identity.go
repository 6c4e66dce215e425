package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/box"

	"deaddrop/internal/domain"
)

// hashBytes is the entropy behind a participant hash: 16 random bytes,
// rendered as 32 lowercase hex chars.
const hashBytes = 16

// NewIdentity generates a fresh anonymous identity: a random participant
// hash and a Curve25519 pair for opening sealed replies. Nothing about the
// hash is derivable from the keys or vice versa.
func NewIdentity() (domain.Identity, error) {
	var seed [hashBytes]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return domain.Identity{}, err
	}
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{
		Hash:    hex.EncodeToString(seed[:]),
		Public:  *pub,
		Private: *priv,
	}, nil
}

// EncodeKey renders a Curve25519 public key for the wire.
func EncodeKey(pub [32]byte) string {
	return base64.StdEncoding.EncodeToString(pub[:])
}

// DecodeKey parses a wire-format public key.
func DecodeKey(s string) ([32]byte, error) {
	var out [32]byte
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return out, errors.Wrap(err, "decode public key")
	}
	if len(b) != 32 {
		return out, errors.Errorf("bad public key length %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}
