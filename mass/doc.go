// Package mass holds the numeric conventions shared by every mass-carrying
// type in lvms: monoisotopic constants, tolerance-based equality and m/z
// conversion.
//
// Two reported masses describe the same observation when they agree within a
// small epsilon; bit-exact float comparison is never used. Equal applies
// DefaultEpsilon, EqualWithin takes an explicit epsilon, and Tolerance
// expresses instrument windows in Daltons or parts-per-million.
//
// Masses are not hashed. Callers bucket by other fields and compare masses
// with Equal inside a bucket.
package mass
