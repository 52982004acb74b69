// Package bitvec provides a variable-length boolean vector with defined
// padding semantics for out-of-range bits.
//
// Architecture:
//   - 32-bit word granularity: the declared size is rounded up to a
//     multiple of 32 bits
//   - Padding: bits beyond the stored length read as the vector's padding
//     value instead of failing
//   - Value semantics: operators return new vectors, operands are never
//     mutated in place
//
// Used for:
//   - Per-writer active-level masks (level id -> bit index)
//   - Combining masks from multiple filter rules via And/Or/Xor/Not
package bitvec
