package models

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

func NewUserID() string {
	return uuid.New().String()
}

func NewSessionID() string {
	return fmt.Sprintf("ws_%s", uuid.New().String())
}

func NewBetID() string {
	return fmt.Sprintf("bet_%s", uuid.New().String())
}

// NewVerificationCode returns a 6-digit code for email verification and
// password resets.
func NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
