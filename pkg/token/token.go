// Package token simulates payment card tokenization. The hash must be
// deterministic so reruns with the same seed reproduce identical datasets,
// which rules out salted hashes.
package token

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 of a card number.
func Hash(cardNumber string) string {
	sum := sha256.Sum256([]byte(cardNumber))
	return hex.EncodeToString(sum[:])
}

// Last4 returns the final four digits of a card number.
func Last4(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
