package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GetShareToken returns a 256-bit random token, hex encoded.
func GetShareToken() string {
	return randomHex(32)
}

// GetSessionID returns a random session identifier.
func GetSessionID() string {
	return randomHex(16)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		log.Fatal("read random bytes:", err)
	}
	return hex.EncodeToString(b)
}

// GetStoredName returns a unique object name for an uploaded blob.
func GetStoredName() string {
	return uuid.NewString()
}
