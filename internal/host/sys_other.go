// Released under an MIT license. See LICENSE.

//go:build !unix

package host

import (
	"os"
)

func process(c *Class) *Class {
	return c.
		Method("getpid", func() int64 {
			return int64(os.Getpid())
		}).
		Method("getuid", func() int64 {
			return int64(os.Getuid())
		}).
		Method("hostname", os.Hostname)
}
