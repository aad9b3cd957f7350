// Package sealer mints the opaque tokens embedded in the per-seat QR codes.
// A token carries the seat number sealed with AES-GCM so a customer cannot
// forge an order for a different seat by editing the URL.
package sealer

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
)

type Sealer struct {
	aead cipher.AEAD
}

// New builds a Sealer from a base64-encoded 256-bit key.
func New(encodedKey string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("seat token key is not valid base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("seat token key rejected: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{aead: aead}, nil
}

// SealSeat produces the opaque token for a seat number.
func (s *Sealer) SealSeat(seat int) (string, error) {
	plaintext := []byte(strconv.Itoa(seat))

	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := s.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// OpenSeat recovers the seat number from a token minted by SealSeat.
func (s *Sealer) OpenSeat(token string) (int, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid seat token encoding: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(data) <= nonceSize {
		return 0, fmt.Errorf("seat token too short")
	}

	pt, err := s.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return 0, fmt.Errorf("seat token rejected: %w", err)
	}

	seat, err := strconv.Atoi(string(pt))
	if err != nil || seat <= 0 {
		return 0, fmt.Errorf("seat token payload invalid")
	}
	return seat, nil
}
