package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"deaddrop/internal/crypto"
	"deaddrop/internal/domain"
)

const identityFilename = "identity.json.enc"

// IdentityFileStore keeps the local identity in a passphrase-encrypted file
// under dir.
type IdentityFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewIdentityFileStore returns a store rooted at dir.
func NewIdentityFileStore(dir string) *IdentityFileStore {
	return &IdentityFileStore{dir: dir}
}

// Save writes the encrypted identity to disk.
func (s *IdentityFileStore) Save(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	blob, err := crypto.EncryptSecret(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, identityFilename), blob, 0o600)
}

// Load reads and decrypts the identity.
func (s *IdentityFileStore) Load(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, identityFilename))
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := crypto.DecryptSecret(passphrase, blob)
	if err != nil {
		return domain.Identity{}, err
	}
	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// Exists reports whether an identity file is already present.
func (s *IdentityFileStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, identityFilename))
	return err == nil
}

// Compile-time assertion that IdentityFileStore implements
// domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
