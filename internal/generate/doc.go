// Package generate runs the review-prompt pipeline.
//
// The pipeline is a pure transformation over an already-gathered
// comparison: classify changed paths, scan the working tree for project
// statistics, render the change report, redact secrets from the diff,
// and assemble the final prompt. An empty diff short-circuits to the
// NoChanges outcome before any of that work happens.
package generate
