package auth

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
)

// claims is the fixed-shape payload embedded inside a session token.
// Unknown fields are rejected on decode; missing fields fail validation.
type claims struct {
	AccountID int   `json:"account_id" validate:"required"`
	NotBefore int64 `json:"nbf" validate:"required"`
	ExpiresAt int64 `json:"exp" validate:"required"`
}

// aeadCodec is a concrete implementation of the TokenCodec interface using
// AES-256-GCM. The token is base64 raw-URL of nonce||ciphertext; the GCM tag
// makes it tamper-evident, the cipher makes it opaque.
type aeadCodec struct {
	aead     cipher.AEAD
	ttl      time.Duration
	validate *validator.Validate
	now      func() time.Time
}

// NewAEADCodec is the constructor for aeadCodec. The configured key material
// is compressed to a 256-bit AES key; the key itself never appears in tokens
// or logs.
func NewAEADCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.Token.Key == "" {
		return nil, errors.New("token key must be provided")
	}

	key := sha256.Sum256([]byte(cfg.Token.Key))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	return &aeadCodec{
		aead:     aead,
		ttl:      cfg.Token.TTL,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

// Issue encrypts a fresh claim set for the account into an opaque URL-safe token.
func (c *aeadCodec) Issue(accountID int) (string, error) {
	now := c.now()
	plaintext, err := json.Marshal(claims{
		AccountID: accountID,
		NotBefore: now.Unix(),
		ExpiresAt: now.Add(c.ttl).Unix(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize claims")
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Validate decrypts and authenticates the token and returns the Session it
// carries. Ciphertext or claim-shape failures map to ErrTokenInvalid; a claim
// set outside its validity window maps to ErrTokenExpired.
func (c *aeadCodec) Validate(token string) (*entity.Session, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(sealed) < c.aead.NonceSize() {
		return nil, domainerrors.ErrTokenInvalid
	}

	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	var cl claims
	decoder := json.NewDecoder(bytes.NewReader(plaintext))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cl); err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}
	if err := c.validate.Struct(&cl); err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	now := c.now().Unix()
	if now > cl.ExpiresAt || now < cl.NotBefore {
		return nil, domainerrors.ErrTokenExpired
	}

	return &entity.Session{
		AccountID: cl.AccountID,
		ExpiresAt: time.Unix(cl.ExpiresAt, 0),
	}, nil
}
