//go:build snapdebug

package snap

import "fmt"

func assertf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("snap: "+format, args...))
	}
}
