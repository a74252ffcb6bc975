//go:build !fxdebug

package fixed

// Release builds keep contract checking out of the numeric path
// entirely; malformed arguments yield unspecified results (typically a
// runtime index panic, possibly silent corruption of shared buffers).
// Build with -tags fxdebug for explicit assertions.

func assert(bool, string) {}

func assertSameSize(int, int) {}

func assertDstSize(int, int) {}

func assertRange(int, int, int) {}
