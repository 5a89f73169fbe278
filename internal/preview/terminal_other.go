//go:build !unix

package preview

import "errors"

func terminalSize(uintptr) (cols, rows int, err error) {
	return 0, 0, errors.New("terminal size not supported on this platform")
}
