// Package output writes generation results in the supported formats.
//
// Formats: markdown (the assembled prompt, verbatim), html (the prompt
// rendered to a standalone page), and report (the change report alone).
// PrintSummary produces a styled one-screen summary for the terminal.
package output
