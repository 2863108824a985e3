package model

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeID returns the canonical form of a record id. Hex addresses are
// compared case-insensitively, so they are reduced to their lower-case
// 0x form; anything else is only trimmed.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if common.IsHexAddress(id) {
		return strings.ToLower(common.HexToAddress(id).Hex())
	}
	return id
}
