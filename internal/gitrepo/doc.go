// Package gitrepo wraps two-ref comparison operations against a git
// repository.
//
// It resolves refs, lists the files changed between the merge-base of two
// refs and the head's tip, and renders the unified diff for the same range,
// shelling out to git for each primitive. Diffs are filtered by exclude glob
// patterns and truncated to a configurable maximum byte size.
//
// All operations are read-only; no branch or working tree state is mutated.
// An empty rendered diff means the refs point at identical trees, which
// callers treat as a terminal "no changes" outcome rather than an error.
package gitrepo
