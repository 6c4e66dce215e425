package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

func TestNewIdentity_HashFormat(t *testing.T) {
	id, err := crypto.NewIdentity()
	require.NoError(t, err)
	require.True(t, domain.ValidHash(id.Hash), "hash %q", id.Hash)

	other, err := crypto.NewIdentity()
	require.NoError(t, err)
	require.NotEqual(t, id.Hash, other.Hash)
	require.NotEqual(t, id.Public, other.Public)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	id, err := crypto.NewIdentity()
	require.NoError(t, err)

	sealed, err := crypto.Seal(id.Public, []byte("a quiet tip"))
	require.NoError(t, err)

	pt, err := crypto.Open(id.Public, id.Private, sealed)
	require.NoError(t, err)
	require.Equal(t, "a quiet tip", string(pt))
}

func TestOpen_WrongKey_Fails(t *testing.T) {
	id, err := crypto.NewIdentity()
	require.NoError(t, err)
	other, err := crypto.NewIdentity()
	require.NoError(t, err)

	sealed, err := crypto.Seal(id.Public, []byte("secret"))
	require.NoError(t, err)

	_, err = crypto.Open(other.Public, other.Private, sealed)
	require.Error(t, err)
}

func TestKeyEncoding_RoundTrip(t *testing.T) {
	id, err := crypto.NewIdentity()
	require.NoError(t, err)

	got, err := crypto.DecodeKey(crypto.EncodeKey(id.Public))
	require.NoError(t, err)
	require.Equal(t, id.Public, got)

	_, err = crypto.DecodeKey("not base64!!")
	require.Error(t, err)
	_, err = crypto.DecodeKey("c2hvcnQ=") // valid base64, wrong length
	require.Error(t, err)
}

func TestZero_OverwritesBuffer(t *testing.T) {
	b := []byte("sensitive key material")
	crypto.Zero(b)
	for i, c := range b {
		require.Zerof(t, c, "byte %d not cleared", i)
	}
}

func TestEncryptSecret_RoundTripAndWrongPassphrase(t *testing.T) {
	blob, err := crypto.EncryptSecret("correct horse", []byte(`{"hash":"x"}`))
	require.NoError(t, err)

	pt, err := crypto.DecryptSecret("correct horse", blob)
	require.NoError(t, err)
	require.Equal(t, `{"hash":"x"}`, string(pt))

	_, err = crypto.DecryptSecret("wrong", blob)
	require.Error(t, err)
}
