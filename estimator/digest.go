package estimator

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/sha3"
)

// DigestSize is the length in bytes of a report digest.
const DigestSize = 32

// Digest fingerprints a report so two runs can be compared byte for byte.
// Each field is written with a length prefix, floats by their bit pattern.
func Digest(rows []Row) []byte {
	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(rows)))
	appendString := func(b []byte, s string) []byte {
		b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
		return append(b, s...)
	}
	for _, r := range rows {
		buf = appendString(buf, r.Name)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.Time))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(r.Memory))
		buf = appendString(buf, r.Parameters)
	}
	h := sha3.NewShake256()
	if _, err := h.Write(buf); err != nil {
		panic(fmt.Errorf("estimator: digest write: %w", err))
	}
	out := make([]byte, DigestSize)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("estimator: digest read: %w", err))
	}
	return out
}
