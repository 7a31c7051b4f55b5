package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewTicketNumber generates a display-only support ticket reference of the
// form "SR" followed by seven digits. Practical collision avoidance only;
// uniqueness is not guaranteed.
func NewTicketNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000000))
	if err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a fixed
		// reference rather than aborting the session.
		return "SR0000000"
	}
	return fmt.Sprintf("SR%07d", n.Int64())
}
