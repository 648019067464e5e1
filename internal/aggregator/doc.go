// Package aggregator implements the fetch -> filter -> dedupe -> publish
// pipeline. A Run processes every configured feed source once, strictly in
// order; periodic execution is left to an external scheduler.
//
// Deduplication is two-layered:
//   - an in-run seen-set of entry links, living only for one Run
//   - a best-effort check against the board's current card descriptions
//
// There is no cross-run ledger. A transient failure of the board check is
// treated as "not found" and can produce a duplicate card.
package aggregator
