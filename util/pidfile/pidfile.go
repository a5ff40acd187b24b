package pidfile

import (
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

// WritePidFile records the current pid at path, atomically so a crashed
// writer never leaves a truncated file behind.
func WritePidFile(path string) error {
	pid := strconv.Itoa(os.Getpid())
	return atomic.WriteFile(path, strings.NewReader(pid))
}
