// Package model is a minimal optimization-model host: named variables
// with flat value buffers, sparse partial declarations and a constraint
// registry. A Model satisfies the boundary package's Structure surface
// during build and its Values surface during evaluation.
package model
