package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"rizoma/internal/keys"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// Header is the gRPC metadata key (and HTTP header) carrying the payer token.
	Header = "authorization"
	// RecordHeader carries the token signed by the record keypair.
	RecordHeader = "x-record-authorization"
	Scheme       = "Bearer "

	DefaultTTL = 2 * time.Minute
)

var ErrTokenMismatch = errors.New("signature does not cover request")

// Claims is what each signer of a store call signs.
// Subject is the signing key, Audience the program id. The payer and the
// record keypair sign the same Payer/Record/TextHash triple.
type Claims struct {
	Payer    string `json:"payer"`
	Record   string `json:"record"`
	TextHash string `json:"text_hash"`
	jwt.RegisteredClaims
}

func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Sign produces an EdDSA token by signer authorizing payer to write text into
// record. No iat is set: a client clock running ahead must not void the token.
func Sign(signer keys.Keypair, programID string, payer, record keys.PublicKey, text string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Payer:    payer.String(),
		Record:   record.String(),
		TextHash: HashText(text),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   signer.Public.String(),
			Audience:  jwt.ClaimStrings{programID},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(signer.Private)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// SignStore returns the two tokens a store call carries: one from the payer
// and one from the record keypair.
func SignStore(payer, record keys.Keypair, programID, text string, now time.Time, ttl time.Duration) (payerToken, recordToken string, err error) {
	payerToken, err = Sign(payer, programID, payer.Public, record.Public, text, now, ttl)
	if err != nil {
		return "", "", err
	}
	recordToken, err = Sign(record, programID, payer.Public, record.Public, text, now, ttl)
	if err != nil {
		return "", "", err
	}
	return payerToken, recordToken, nil
}

// Verify checks the token signature against the key named in its subject
// and returns the claims with the recovered signer.
func Verify(tokenString, programID string) (*Claims, keys.PublicKey, error) {
	claims := &Claims{}
	var signer keys.PublicKey

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		pk, err := keys.ParsePublicKey(claims.Subject)
		if err != nil {
			return nil, fmt.Errorf("subject: %w", err)
		}
		signer = pk
		return pk.Ed25519(), nil
	})
	if err != nil {
		return nil, keys.PublicKey{}, err
	}
	if !token.Valid {
		return nil, keys.PublicKey{}, fmt.Errorf("invalid token")
	}
	if !claims.VerifyExpiresAt(time.Now(), true) {
		return nil, keys.PublicKey{}, fmt.Errorf("token has no expiry or is expired")
	}
	if !claims.VerifyAudience(programID, true) {
		return nil, keys.PublicKey{}, fmt.Errorf("token is not addressed to program %s", programID)
	}
	return claims, signer, nil
}

// Covers reports whether the claims authorize payer writing text into record.
func (c *Claims) Covers(payer, record keys.PublicKey, text string) error {
	if c.Payer != payer.String() || c.Record != record.String() || c.TextHash != HashText(text) {
		return ErrTokenMismatch
	}
	return nil
}
