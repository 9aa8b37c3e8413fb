//go:build !linux && !darwin && !windows

package platform

import (
	"fmt"
	"runtime"
)

func newManager() (Manager, error) {
	return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}
