// Package hasher produces and verifies salted password digests and mints
// session tokens. Digests are stored as "salt$hash": a 32-hex-char random
// salt, then the hex SHA-256 of salt||password. Neither half can contain the
// delimiter, so splitting on the first '$' is unambiguous.
package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const delimiter = "$"

// Hasher salts and hashes credentials. The zero value is ready to use and
// safe for concurrent callers; it keeps no state beyond consuming randomness.
type Hasher struct{}

func New() *Hasher {
	return &Hasher{}
}

// Hash digests plaintext under a fresh 128-bit salt. Two calls with the same
// plaintext return different digests.
func (h *Hasher) Hash(plaintext string) string {
	salt := randomHex()
	return salt + delimiter + digest(salt, plaintext)
}

// Verify reports whether candidate matches the stored digest. A malformed
// digest (missing delimiter, empty salt or hash) verifies as false; stored
// garbage must never take authentication down.
func (h *Hasher) Verify(stored, candidate string) bool {
	salt, storedHash, ok := strings.Cut(stored, delimiter)
	if !ok || salt == "" || storedHash == "" {
		return false
	}
	recomputed := digest(salt, candidate)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(recomputed)) == 1
}

// NewSessionToken mints an opaque session token from the same randomness
// source as salts.
func (h *Hasher) NewSessionToken() string {
	return randomHex()
}

func digest(salt, plaintext string) string {
	sum := sha256.Sum256([]byte(salt + plaintext))
	return hex.EncodeToString(sum[:])
}

// randomHex renders 128 bits of randomness as 32 hex characters. uuid.New
// panics only if the system randomness source is broken, in which case
// nothing credential-related should proceed anyway.
func randomHex() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
