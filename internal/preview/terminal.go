package preview

// Fallback terminal dimensions when the size cannot be queried.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// TerminalSize returns the size of the terminal on fd, or DefaultCols by
// DefaultRows with ok false when fd is not a terminal.
func TerminalSize(fd uintptr) (cols, rows int, ok bool) {
	cols, rows, err := terminalSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return DefaultCols, DefaultRows, false
	}
	return cols, rows, true
}
