package lobby

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 6
)

// GenerateCode returns a random game code of CodeLength characters.
func GenerateCode() (string, error) {
	size := big.NewInt(int64(len(codeAlphabet)))
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeCode trims and upper-cases a code typed by a player.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
