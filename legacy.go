package acvm

import (
	"crypto/sha256"
	"hash/crc32"

	"github.com/zkforge/acvm/acir"
)

// HashConstraintSystem fingerprints a circuit with SHA-256 over its
// serialized form.
//
// Deprecated: compatibility shim for older toolchains; circuit framing is
// owned by external serializers.
func HashConstraintSystem(cs acir.Circuit) [32]byte {
	return sha256.Sum256(cs.Serialize())
}

// ChecksumConstraintSystem fingerprints a circuit with CRC-32 over its
// serialized form.
//
// Deprecated: see HashConstraintSystem.
func ChecksumConstraintSystem(cs acir.Circuit) uint32 {
	return crc32.ChecksumIEEE(cs.Serialize())
}
