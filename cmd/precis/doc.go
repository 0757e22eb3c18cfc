// Precis assembles AI code-review prompts from git branch comparisons.
//
// It resolves two refs, renders their merge-base diff, classifies and
// summarizes the changed files, and bundles everything into a single
// self-contained prompt that any AI reviewer can consume.
//
// Usage:
//
//	precis generate feature/users               # write review-prompt.md
//	precis generate feature/users --stdout      # print the prompt
//	precis review feature/users                 # generate and submit to a backend
//	precis config set provider claude           # pick an AI backend
//	precis serve                                # expose tools over MCP
//
// See https://github.com/precis-cli/precis for full documentation.
package main
