// Package backends implements the Submitter interface for each supported
// AI review backend.
//
// Supported backends: claude (Anthropic), gpt (OpenAI), copilot (GitHub
// Models), and placeholder for credential-free runs. The review text a
// backend returns is opaque pass-through; the core never interprets it.
//
// Submission is deliberately single-shot: there is no retry or backoff.
// By the time a submission fails the prompt artifact is already written,
// so a failure is surfaced as UnavailableError and the run ends.
//
// Use [New] to obtain a Submitter by provider name and model string.
// Unknown names yield UnsupportedProviderError rather than a silent
// fallback.
package backends
