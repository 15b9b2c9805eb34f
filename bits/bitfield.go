package bits

import "math/bits"

// Bitfield is a growable set of row indices.
type Bitfield []uint64

func NewBitfield(size int) Bitfield {
	return make(Bitfield, (size+63)>>6)
}

func (b Bitfield) Set(bit int) {
	word := bit >> 6 // bit / 64
	mask := uint64(1) << (bit & 63)
	b[word] |= mask
}

func (b Bitfield) Clear(bit int) {
	word := bit >> 6
	mask := uint64(1) << (bit & 63)
	b[word] &^= mask
}

func (b Bitfield) Get(bit int) uint64 {
	word := bit >> 6
	return (b[word] >> (bit & 63)) & 1
}

// FromSorted sets every bit in an ascending list of indices.
func (b Bitfield) FromSorted(indices []int) {
	if len(indices) == 0 {
		return
	}

	currWord := indices[0] >> 6
	mask := uint64(0)

	for _, bit := range indices {
		w := bit >> 6
		if w != currWord {
			b[currWord] |= mask
			currWord = w
			mask = 0
		}
		mask |= 1 << (bit & 63)
	}

	b[currWord] |= mask
}

// ToIndices appends the set bits in ascending order.
func (b Bitfield) ToIndices(out []int) []int {
	for wi, w := range b {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*64+tz)
			w &= w - 1 // clear lowest set bit
		}
	}
	return out
}

func (b Bitfield) Any() bool {
	for _, w := range b {
		if w != 0 {
			return true
		}
	}
	return false
}

func (b Bitfield) Count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

func MergeOR(a, b Bitfield) (out Bitfield) {
	out = make(Bitfield, max(len(a), len(b)))
	copy(out, a)
	for i := range b {
		out[i] |= b[i]
	}
	return
}

func MergeAND(a, b Bitfield) (out Bitfield) {
	out = make(Bitfield, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i] & b[i]
	}
	return
}
