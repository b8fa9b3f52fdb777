// Package dump renders TLV8 streams as trees for inspection.
//
// Tree parses a byte buffer into a forest of nodes, descending into any
// content that itself reads as TLV8. Render writes the forest as indented
// text, optionally consulting a profile.Profile for tag names and value
// types. The package logs through a settable zap logger (no-op by
// default).
package dump
