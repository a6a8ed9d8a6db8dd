package repository

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptedStateStore decorates a StateStore, encrypting designated keys at
// rest with XChaCha20-Poly1305. Keys outside the protected set pass through
// unchanged, so only the sensitive slices (people, projects) pay the cost.
type EncryptedStateStore struct {
	inner     StateStore
	aead      cipher.AEAD
	protected map[string]bool
}

// NewEncryptedStateStore wraps inner with at-rest encryption for the given
// keys. The passphrase is stretched to a 256-bit key with SHA-256.
func NewEncryptedStateStore(inner StateStore, passphrase string, protectedKeys ...string) (*EncryptedStateStore, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("encryption passphrase is required")
	}
	sum := sha256.Sum256([]byte(passphrase))
	aead, err := chacha20poly1305.NewX(sum[:])
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}

	protected := make(map[string]bool, len(protectedKeys))
	for _, k := range protectedKeys {
		protected[k] = true
	}
	return &EncryptedStateStore{inner: inner, aead: aead, protected: protected}, nil
}

func (e *EncryptedStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := e.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !e.protected[key] {
		return value, nil
	}

	if len(value) < chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("state key %q: ciphertext too short", key)
	}
	nonce, ciphertext := value[:chacha20poly1305.NonceSizeX], value[chacha20poly1305.NonceSizeX:]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("decrypting state key %q: %w", key, err)
	}
	return plaintext, nil
}

func (e *EncryptedStateStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := e.sealIfProtected(key, value)
	if err != nil {
		return err
	}
	return e.inner.Set(ctx, key, sealed)
}

func (e *EncryptedStateStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	sealed := make(map[string][]byte, len(entries))
	for key, value := range entries {
		v, err := e.sealIfProtected(key, value)
		if err != nil {
			return err
		}
		sealed[key] = v
	}
	return e.inner.SetBatch(ctx, sealed)
}

func (e *EncryptedStateStore) Delete(ctx context.Context, key string) error {
	return e.inner.Delete(ctx, key)
}

func (e *EncryptedStateStore) Keys(ctx context.Context) ([]string, error) {
	return e.inner.Keys(ctx)
}

func (e *EncryptedStateStore) Subscribe(fn func(key string)) (cancel func()) {
	return e.inner.Subscribe(fn)
}

func (e *EncryptedStateStore) sealIfProtected(key string, value []byte) ([]byte, error) {
	if !e.protected[key] {
		return value, nil
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce for %q: %w", key, err)
	}
	// The key name is bound as additional data so a ciphertext cannot be
	// replayed under a different state key.
	return append(nonce, e.aead.Seal(nil, nonce, value, []byte(key))...), nil
}
