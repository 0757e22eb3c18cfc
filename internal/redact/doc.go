// Package redact removes secrets from diff text before it is embedded in a
// review prompt and handed to an external AI backend.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs, bearer tokens, DSN-style
// connection strings with inline credentials, and provider-specific tokens
// (Anthropic, OpenAI, GitHub).
package redact
