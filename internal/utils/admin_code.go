package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	AdminCodePrefix       = "ADMIN"
	adminCodeMinLength    = 10
	adminCodeSuffixLength = 6
	base36Alphabet        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var base36Size = big.NewInt(int64(len(base36Alphabet)))

// GenerateAdminCode returns ADMIN + base36(unix millis) + a 6 char random
// base36 suffix, upper-cased. The suffix separates codes minted in the same
// millisecond.
func GenerateAdminCode() string {
	return generateAdminCodeAt(time.Now())
}

func generateAdminCodeAt(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return AdminCodePrefix + stamp + randomBase36(adminCodeSuffixLength)
}

func randomBase36(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, base36Size)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic("admin code: reading random source: " + err.Error())
		}
		buf[i] = base36Alphabet[idx.Int64()]
	}
	return string(buf)
}

// IsValidAdminCode performs the cheap shape check done before a lookup.
func IsValidAdminCode(code string) bool {
	if code == "" {
		return false
	}
	return strings.HasPrefix(code, AdminCodePrefix) && len(code) >= adminCodeMinLength
}
