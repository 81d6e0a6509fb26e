// Package contact holds the contact data produced by narrow-phase shape
// tests and the algorithms that reduce many raw contacts into a single
// decision-ready point.
//
// A Points collection is owned by the call that built it and is mutated in
// place by Validate and the sorting and flipping helpers, so callers must
// not keep iterating over Slice results across those calls.
package contact
