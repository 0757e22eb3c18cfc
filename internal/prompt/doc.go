// Package prompt assembles the final review prompt document.
//
// The assembled document concatenates, in fixed order: a metadata header, a
// static instructions template (optionally extended by a JSON instruction
// pack), the rendered change report, the raw diff in a fenced block, and a
// closing checklist. The instructions template is opaque to the assembler;
// no validation is performed on it.
package prompt
