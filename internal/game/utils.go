package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"

	"github.com/yjb94/CulinaryClassWars/internal/store"
)

// GenerateShowCode creates a random show code
func GenerateShowCode() string {
	code := make([]byte, ShowCodeLength)
	for i := range ShowCodeLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(ShowCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = ShowCodeChars[rand.IntN(len(ShowCodeChars))]
			continue
		}
		code[i] = ShowCodeChars[n.Int64()]
	}
	return string(code)
}

// GetUniqueShowCode generates a show code not yet present in the store
func GetUniqueShowCode(showStore *store.ShowStore) string {
	for {
		code := GenerateShowCode()
		if !showStore.Exists(code) {
			return code
		}
	}
}
