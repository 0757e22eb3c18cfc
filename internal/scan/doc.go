// Package scan walks a fixed set of project directories and produces
// per-metric file counts.
//
// Each metric pairs a filename glob with an optional content keyword; a
// file counts at most once per metric. Missing roots and unreadable files
// silently contribute zero so the scan degrades gracefully on partial
// project layouts. The scan is read-only and can be skipped entirely by
// caller configuration.
package scan
