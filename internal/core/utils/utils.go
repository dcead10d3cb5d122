package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON fingerprints a request payload for idempotency comparisons. The
// hash is over the canonical JSON encoding, so field order in the original
// request does not matter.
func HashJSON(jsonData any) string {
	data, _ := json.Marshal(jsonData)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
