//go:build !snapdebug

package snap

// assertf checks caller contracts. It is a no-op unless built with the
// snapdebug tag.
func assertf(ok bool, format string, args ...any) {}
