//go:build !((linux && cgo) || windows || darwin)

package generator

import "github.com/gucio32/morsekit/pkg/morseerr"

func openOto(Format) (Sink, error) {
	return nil, morseerr.Audio(nil, "backend %q requires cgo on this platform, try %q", BackendOto, BackendBell)
}

func openBeep(Format) (Sink, error) {
	return nil, morseerr.Audio(nil, "backend %q requires cgo on this platform, try %q", BackendBeep, BackendBell)
}
