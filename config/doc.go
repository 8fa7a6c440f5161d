// Package config resolves the router's two session-wide penalties
// (via and wrong-direction) from an input file's header values and any
// caller-supplied overrides, with overrides always winning: a CLI flag
// beats the value carried in the input file's header.
//
// The resolution shape is a Resolved value built by applying an
// ordered list of Options, each a closure over the resolved fields —
// later options override earlier ones.
package config
