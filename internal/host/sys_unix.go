// Released under an MIT license. See LICENSE.

//go:build unix

package host

import (
	"golang.org/x/sys/unix"
)

func process(c *Class) *Class {
	return c.
		Method("getpid", func() int64 {
			return int64(unix.Getpid())
		}).
		Method("getuid", func() int64 {
			return int64(unix.Getuid())
		}).
		Method("hostname", func() (string, error) {
			var u unix.Utsname
			if err := unix.Uname(&u); err != nil {
				return "", err
			}

			return unix.ByteSliceToString(u.Nodename[:]), nil
		})
}
