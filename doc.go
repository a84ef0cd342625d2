// Package jsondelta computes structural deltas between two JSON values and
// applies them in both forward (patch) and reverse (unpatch) directions.
//
// A delta encodes the minimum information needed to transform a left
// document into a right document, using a compact, self-describing format
// based on JSON itself: objects carry property-level deltas, arrays carry
// indexed add/remove/move/modify operations keyed on left-side and
// right-side positions. The wire format is compatible with the jsondiffpatch
// delta convention.
//
// Values are the native go types produced by encoding/json when unmarshaling
// into interface{}: map[string]interface{} and []interface{} for the two
// compound types, and string, float64, bool, nil for the scalar types.
// jsondelta never introduces its own tagged value type, so it composes with
// any decoder that produces the same shapes (encoding/json, CBOR, YAML, …).
//
// The array differ is the part of this package that deserves the closest
// reading: given two arrays it computes a minimal edit script — additions,
// deletions, in-place modifications, and moves — using the longest common
// subsequence of the two arrays under deep equality, with head and tail
// trimming applied before the LCS engine runs. See lcs.go for the algorithm
// and its documented, deterministic tie-breaking rule.
//
// Diff, Patch, and Unpatch never mutate their inputs: every applier clones
// before it writes, so a caller's left, right, and delta values are
// byte-identical before and after a call.
package jsondelta
