//go:build linux || freebsd || openbsd || netbsd || dragonfly || solaris

package desktop

import "github.com/atotto/clipboard"

// usePrimary points the library at the primary selection and returns a func
// that puts the previous target back
func usePrimary(primary bool) func() {
	prev := clipboard.Primary
	clipboard.Primary = primary
	return func() { clipboard.Primary = prev }
}
