package either

import "fmt"

// Format prints the live payload with the same verb and flags, so an Either
// displays exactly as the value it holds. %#v adds the side: Left(42).
func (e Either[L, R]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		fmt.Fprintf(f, "%s(%#v)", e.side, e.value())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), e.value())
}
