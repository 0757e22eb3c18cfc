// Package mcpserver exposes prompt generation over the Model Context
// Protocol, so agent frontends can ask for a review prompt or a change
// report without shelling out to the CLI.
package mcpserver
