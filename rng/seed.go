package rng

import (
	"encoding/binary"
	"hash/fnv"
)

// DeriveSeed folds a master seed and a step identity into a 64-bit
// seed using FNV-1a. The identity is (name, scope, order): which step,
// which logical group it belongs to, and its position within that
// group. The result never depends on the surrounding step set, so
// filtering a pipeline leaves every remaining step's seed untouched.
func DeriveSeed(master int64, name string, scope, order int64) uint64 {
	var buf [8]byte
	h := fnv.New64a()

	binary.LittleEndian.PutUint64(buf[:], uint64(master))
	h.Write(buf[:])
	h.Write([]byte{0})

	h.Write([]byte(name))
	h.Write([]byte{0})

	binary.LittleEndian.PutUint64(buf[:], uint64(scope))
	h.Write(buf[:])
	h.Write([]byte{0})

	binary.LittleEndian.PutUint64(buf[:], uint64(order))
	h.Write(buf[:])

	return h.Sum64()
}
