// Package schreier: transversal trees, orbit computation, and lazy
// Schreier-generator iteration underlying BSGS construction.
package schreier

import "errors"

var (
	// ErrPointNotInOrbit indicates PathProduct was asked for a point the
	// tree never discovered.
	ErrPointNotInOrbit = errors.New("schreier: point not in orbit")
)
