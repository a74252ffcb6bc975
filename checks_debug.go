//go:build fxdebug

package fixed

import "fmt"

// Debug builds (-tags fxdebug) validate the caller contracts that the
// release numeric path deliberately leaves unchecked.

func assert(cond bool, msg string) {
	if !cond {
		panic("fixed: " + msg)
	}
}

func assertSameSize(size, operand int) {
	if size != operand {
		panic(fmt.Sprintf("fixed: size mismatch (%d vs %d)", size, operand))
	}
}

func assertDstSize(size, dst int) {
	if dst < size {
		panic(fmt.Sprintf("fixed: destination too small (%d < %d)", dst, size))
	}
}

func assertRange(offset, count, size int) {
	if offset < 0 || count < 0 || offset+count > size {
		panic(fmt.Sprintf("fixed: range [%d,%d) out of bounds for size %d", offset, offset+count, size))
	}
}
