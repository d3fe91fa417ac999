// Package schreier — see structure.go (transversal trees), orbit.go
// (orbit closure), and queue.go (lazy Schreier-generator iteration).
package schreier
