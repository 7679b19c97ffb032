package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mr-tron/base58"
)

const PublicKeySize = ed25519.PublicKeySize

var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey is an account address: a raw ed25519 public key, printed in base58.
type PublicKey [PublicKeySize]byte

func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	raw, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %q: %v", ErrInvalidPublicKey, s, err)
	}
	if len(raw) != PublicKeySize {
		return pk, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidPublicKey, s, len(raw))
	}
	copy(pk[:], raw)
	return pk, nil
}

// MustParsePublicKey is for compile-time constants only.
func MustParsePublicKey(s string) PublicKey {
	pk, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

func (pk PublicKey) Ed25519() ed25519.PublicKey {
	return ed25519.PublicKey(pk[:])
}

func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

// Value stores the key as its base58 text.
func (pk PublicKey) Value() (driver.Value, error) {
	return pk.String(), nil
}

func (pk *PublicKey) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return pk.UnmarshalText([]byte(v))
	case []byte:
		return pk.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidPublicKey, src)
	}
}

// Keypair holds an ed25519 signing key and its address.
type Keypair struct {
	Public  PublicKey
	Private ed25519.PrivateKey
}

func Generate() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	var pk PublicKey
	copy(pk[:], pub)
	return Keypair{Public: pk, Private: priv}, nil
}

func FromPrivateKey(priv ed25519.PrivateKey) (Keypair, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return Keypair{}, fmt.Errorf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	derived := ed25519.NewKeyFromSeed(priv.Seed())
	if !derived.Equal(priv) {
		return Keypair{}, errors.New("private key does not match its embedded public key")
	}
	var pk PublicKey
	copy(pk[:], derived.Public().(ed25519.PublicKey))
	return Keypair{Public: pk, Private: derived}, nil
}

// Save writes the keypair as a JSON array of the 64 private key bytes,
// the layout used by solana-keygen.
func (kp Keypair) Save(path string) error {
	ints := make([]int, len(kp.Private))
	for i, b := range kp.Private {
		ints[i] = int(b)
	}
	body, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("marshal keypair: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create keypair dir: %w", err)
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return fmt.Errorf("write keypair: %w", err)
	}
	return nil
}

func Load(path string) (Keypair, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Keypair{}, fmt.Errorf("read keypair: %w", err)
	}
	var ints []int
	if err := json.Unmarshal(body, &ints); err != nil {
		return Keypair{}, fmt.Errorf("decode keypair %s: %w", path, err)
	}
	priv := make(ed25519.PrivateKey, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return Keypair{}, fmt.Errorf("decode keypair %s: byte %d out of range", path, i)
		}
		priv[i] = byte(v)
	}
	kp, err := FromPrivateKey(priv)
	if err != nil {
		return Keypair{}, fmt.Errorf("decode keypair %s: %w", path, err)
	}
	return kp, nil
}
