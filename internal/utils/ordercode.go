package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateOrderCode returns a public customer-facing order code, e.g.
// "ORD-7KQ2M9XWCF". Uniqueness is ultimately enforced by the orders
// table UNIQUE constraint; the code space just makes collisions rare.
func GenerateOrderCode() string {
	buf := make([]byte, 10)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(codeAlphabet)))
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%s", buf)
}
