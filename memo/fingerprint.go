package memo

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/mitchellh/hashstructure"
)

// Fingerprint identifies an MExpr's equivalence-preserving content: operator
// kind, intrinsic attributes (excluding a join's on-clause), and the ordered
// fingerprints of its operand groups. Two MExprs with the same fingerprint
// are, by construction, the same logical expression and belong to the same
// group (the memo's canonicality invariant).
type Fingerprint uint64

func computeFingerprint(op Op, operands []GroupID, operandFP func(GroupID) Fingerprint) Fingerprint {
	h := xxhash.New()
	h.Write([]byte{byte(op.Kind())})

	contentHash, err := hashstructure.Hash(op, nil)
	if err != nil {
		// Op is one of the small closed set of structs in op.go; a failure here
		// would be a programming error, not a data problem. Degrade to
		// kind-only content rather than propagating an error through every
		// interning call site.
		contentHash = 0
	}
	writeUint64(h, contentHash)

	for _, gid := range operands {
		writeUint64(h, uint64(operandFP(gid)))
	}

	return Fingerprint(h.Sum64())
}

func writeUint64(h *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// sourceFingerprint derives a fingerprint for a leaf source group identified
// only by a string id, used by the toy string-encoded test plans (see
// memo.NewSourceGroup) and never by the InternPlan path.
func sourceFingerprint(id string) Fingerprint {
	return Fingerprint(xxhash.Sum64([]byte(id)))
}
