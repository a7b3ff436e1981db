// Package options defines the command-line surfaces of the receiver-function
// processing commands. It translates raw flags into typed, fully-defaulted
// configuration records: comma-separated bound options become ordered pairs,
// phase names select canonical distance envelopes, and cross-field
// constraints (mutually exclusive flags, both-or-neither pairs) are enforced
// before any processing starts. Each command contributes one flag set and one
// resolver; both are consumed by cmd/rfpy.
package options
