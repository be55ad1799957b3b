// Package crypto hashes the owner password with Argon2id.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash      = errors.New("malformed argon2id hash")
	ErrUnsupportedVersion = errors.New("unsupported argon2 version")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// Params are the Argon2id cost settings stored alongside each hash.
type Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams are used for every new hash.
var DefaultParams = Params{Memory: 64 * 1024, Time: 3, Threads: 2, SaltLen: 16, KeyLen: 32}

type encodedHash struct {
	params Params
	salt   []byte
	key    []byte
}

// String renders the PHC form: $argon2id$v=19$m=..,t=..,p=..$salt$key
func (h encodedHash) String() string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		b64.EncodeToString(h.salt), b64.EncodeToString(h.key))
}

func parseHash(s string) (encodedHash, error) {
	fields := strings.Split(strings.TrimSpace(s), "$")
	if len(fields) != 6 || fields[0] != "" || fields[1] != "argon2id" {
		return encodedHash{}, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return encodedHash{}, ErrMalformedHash
	}
	if version != argon2.Version {
		return encodedHash{}, ErrUnsupportedVersion
	}

	var h encodedHash
	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Time, &h.params.Threads); err != nil {
		return encodedHash{}, ErrMalformedHash
	}
	// argon2.IDKey panics on zero time or parallelism.
	if h.params.Memory == 0 || h.params.Time == 0 || h.params.Threads == 0 {
		return encodedHash{}, ErrMalformedHash
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil || len(h.salt) == 0 {
		return encodedHash{}, ErrMalformedHash
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(fields[5]); err != nil || len(h.key) == 0 {
		return encodedHash{}, ErrMalformedHash
	}
	h.params.SaltLen = uint32(len(h.salt))
	h.params.KeyLen = uint32(len(h.key))
	return h, nil
}

// HashPassword returns the PHC-encoded Argon2id hash of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	p := DefaultParams
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	h := encodedHash{
		params: p,
		salt:   salt,
		key:    argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen),
	}
	return h.String(), nil
}

// CheckHash reports whether encoded is a usable Argon2id hash.
func CheckHash(encoded string) error {
	_, err := parseHash(encoded)
	return err
}

// VerifyPassword reports whether password matches encoded.
func VerifyPassword(password, encoded string) (bool, error) {
	h, err := parseHash(encoded)
	if err != nil {
		return false, err
	}
	p := h.params
	candidate := argon2.IDKey([]byte(password), h.salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}
