package oprf

import "encoding/hex"

// IdentityKey formats the final identity key returned to a caller:
// "<processIdentifier>:<64 lowercase hex chars>", per spec §6. processIdentifier
// is treated as an opaque token; this module never parses it back apart.
func IdentityKey(processIdentifier string, output [32]byte) string {
	return processIdentifier + ":" + hex.EncodeToString(output[:])
}
