package bitvec

import "fmt"

const (
	wordBits = 32
	wordMask = wordBits - 1
	allOnes  = ^uint32(0)
)

// Vector is a variable-length boolean vector with 32-bit word granularity.
//
// Bits at indices beyond the stored length logically read as the vector's
// padding value. This makes vectors of different stored lengths comparable
// and combinable: the shorter operand contributes its padding for the tail.
//
// The zero value is an empty vector with padding false (all bits clear).
type Vector struct {
	words   []uint32
	padding bool
}

// New creates a vector holding at least size bits, each initialized to value.
// The stored size is rounded up to the next multiple of 32. Bits outside the
// stored range read as padding.
func New(size int, value, padding bool) Vector {
	if size < 0 {
		panic(fmt.Sprintf("bitvec: negative size %d", size))
	}
	words := make([]uint32, (size+wordMask)/wordBits)
	if value {
		for i := range words {
			words[i] = allOnes
		}
	}
	return Vector{words: words, padding: padding}
}

// Size returns the number of stored bits (a multiple of 32).
func (v Vector) Size() int { return len(v.words) * wordBits }

// Padding returns the value of bits beyond the stored range.
func (v Vector) Padding() bool { return v.padding }

// paddingWord is the padding value expanded to a full word.
func (v Vector) paddingWord() uint32 {
	if v.padding {
		return allOnes
	}
	return 0
}

// word returns the stored word at index i, or the padding word when i lies
// beyond the stored range.
func (v Vector) word(i int) uint32 {
	if i < len(v.words) {
		return v.words[i]
	}
	return v.paddingWord()
}

// IsSet reports whether bit is set. Bits outside the stored range (including
// negative indices) read as the padding value.
func (v Vector) IsSet(bit int) bool {
	if bit < 0 || bit >= v.Size() {
		return v.padding
	}
	return v.words[bit/wordBits]&(1<<(uint(bit)&wordMask)) != 0
}

// IsClear reports whether bit is clear. It is the negation of IsSet,
// padding included.
func (v Vector) IsClear(bit int) bool { return !v.IsSet(bit) }

func (v Vector) checkBit(bit int) {
	if bit < 0 || bit >= v.Size() {
		panic(fmt.Sprintf("bitvec: bit %d out of range [0,%d)", bit, v.Size()))
	}
}

func (v Vector) checkRange(from, count int) {
	if count < 0 {
		panic(fmt.Sprintf("bitvec: negative count %d", count))
	}
	if from < 0 || from+count > v.Size() {
		panic(fmt.Sprintf("bitvec: range [%d,%d) out of range [0,%d)", from, from+count, v.Size()))
	}
}

// Set sets bit to one. The bit must lie within the stored range; out-of-range
// access is a caller bug and panics.
func (v Vector) Set(bit int) {
	v.checkBit(bit)
	v.words[bit/wordBits] |= 1 << (uint(bit) & wordMask)
}

// Clear sets bit to zero. The bit must lie within the stored range.
func (v Vector) Clear(bit int) {
	v.checkBit(bit)
	v.words[bit/wordBits] &^= 1 << (uint(bit) & wordMask)
}

// SetRange sets count bits starting at from. The full range must lie within
// the stored range.
func (v Vector) SetRange(from, count int) {
	v.checkRange(from, count)
	v.applyRange(from, count, true)
}

// ClearRange clears count bits starting at from. The full range must lie
// within the stored range.
func (v Vector) ClearRange(from, count int) {
	v.checkRange(from, count)
	v.applyRange(from, count, false)
}

func (v Vector) applyRange(from, count int, set bool) {
	for count > 0 {
		wordIdx := from / wordBits
		bitIdx := uint(from) & wordMask
		n := wordBits - int(bitIdx)
		if n > count {
			n = count
		}
		var mask uint32
		if n == wordBits {
			mask = allOnes
		} else {
			mask = ((1 << uint(n)) - 1) << bitIdx
		}
		if set {
			v.words[wordIdx] |= mask
		} else {
			v.words[wordIdx] &^= mask
		}
		from += n
		count -= n
	}
}

// Not returns the bitwise complement. The result's padding is the complement
// of the receiver's padding, so bits beyond the stored range invert as well.
func (v Vector) Not() Vector {
	words := make([]uint32, len(v.words))
	for i, w := range v.words {
		words[i] = ^w
	}
	return Vector{words: words, padding: !v.padding}
}

// And returns the bitwise conjunction of v and o. The result is sized to the
// longer operand; the shorter operand contributes its padding for the tail.
// The result carries the receiver's padding value.
func (v Vector) And(o Vector) Vector {
	return v.combine(o, func(a, b uint32) uint32 { return a & b })
}

// Or returns the bitwise disjunction of v and o, sized and padded like And.
func (v Vector) Or(o Vector) Vector {
	return v.combine(o, func(a, b uint32) uint32 { return a | b })
}

// Xor returns the bitwise exclusive-or of v and o, sized and padded like And.
func (v Vector) Xor(o Vector) Vector {
	return v.combine(o, func(a, b uint32) uint32 { return a ^ b })
}

func (v Vector) combine(o Vector, op func(a, b uint32) uint32) Vector {
	n := len(v.words)
	if len(o.words) > n {
		n = len(o.words)
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = op(v.word(i), o.word(i))
	}
	return Vector{words: words, padding: v.padding}
}

// Equal reports whether v and o represent the same effective bit sequence.
// Comparison spans the union of both stored ranges with each operand's own
// padding filling its tail, and the padding values themselves must match, so
// an empty padding-false vector equals an all-clear padding-false vector of
// any stored length.
func (v Vector) Equal(o Vector) bool {
	if v.padding != o.padding {
		return false
	}
	n := len(v.words)
	if len(o.words) > n {
		n = len(o.words)
	}
	for i := 0; i < n; i++ {
		if v.word(i) != o.word(i) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	words := make([]uint32, len(v.words))
	copy(words, v.words)
	return Vector{words: words, padding: v.padding}
}
