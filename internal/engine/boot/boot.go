// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping sprig.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.sprig
var script string //nolint:gochecknoglobals

// Name is the label used when reading the boot script.
const Name = "boot.sprig"

// Script returns the boot script for sprig.
func Script() string {
	return script
}
