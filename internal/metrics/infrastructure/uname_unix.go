//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package infrastructure

import (
	"context"

	"golang.org/x/sys/unix"
)

// uname returns the same values as `uname -s` and `uname -r`
func uname(ctx context.Context) (sysname, release string, err error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:]), nil
}
