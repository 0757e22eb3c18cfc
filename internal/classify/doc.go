// Package classify buckets changed file paths into a fixed set of
// naming-convention categories.
//
// Matching is substring- or suffix-based and deliberately overlapping:
// categories are counts, not partitions, so a single path may contribute to
// several categories at once. Classification is deterministic and
// independent of path order, and never fails.
package classify
