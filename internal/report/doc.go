// Package report renders the structured change report consumed by the
// prompt assembler.
//
// Section order is fixed: summary, per-category breakdown, project
// statistics (omitted when scanning produced nothing), and the raw
// changed-file listing. Derived ratios floor their division and render
// "not applicable" instead of dividing by zero. Rendering is pure text
// assembly with no I/O, so identical inputs always produce identical text.
package report
