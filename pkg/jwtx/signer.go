package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs session tokens using Ed25519. Keys are ephemeral: generated at
// startup and never persisted, so a restart invalidates outstanding sessions.
// That is acceptable here because sessions only gate invitation issuance and
// staff can log in again.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewEphemeralSigner generates a fresh Ed25519 keypair.
func NewEphemeralSigner(kid string) (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &Signer{kid: kid, key: priv, pub: pub}, nil
}

func (s *Signer) KID() string { return s.kid }

// Ready reports whether the signer holds a usable keypair.
func (s *Signer) Ready() bool {
	return len(s.key) == ed25519.PrivateKeySize && len(s.pub) == ed25519.PublicKeySize
}

// Sign takes claims and turns them into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	if !s.Ready() {
		return "", errors.New("jwtx: signer has no key")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verifier returns a verifier bound to this signer's public key and the
// given expected issuer.
func (s *Signer) Verifier(issuer string) *Verifier {
	return &Verifier{pub: s.pub, issuer: issuer}
}
