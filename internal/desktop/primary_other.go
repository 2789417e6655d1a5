//go:build !(linux || freebsd || openbsd || netbsd || dragonfly || solaris)

package desktop

// usePrimary is a no-op where there is no primary selection; both
// selections map to the one clipboard
func usePrimary(bool) func() {
	return func() {}
}
