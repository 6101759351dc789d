// meta/meta.go
package meta

// DEPTH defines the default number of plies searched per move.
const DEPTH = 3

// MAX_DEPTH caps the depth accepted from callers; a full tree holds up to 16^depth leaves.
const MAX_DEPTH = 5

// GO_ROUTINES defines the default number of goroutines backing up root moves.
const GO_ROUTINES = 1

// MAX_TURNS caps self-play games; the cube holds 64 pieces.
const MAX_TURNS = 64

// SERVER_ADDR is the default listen address of the advisor server.
const SERVER_ADDR = ":8080"
