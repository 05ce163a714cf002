package env

import (
	"os"
	"runtime"
	"strings"
)

// envAssumeNoMovingGC is read by go4.org/unsafe/assume-no-moving-gc, which gorgonia pulls in.
const envAssumeNoMovingGC = "ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH"

func init() {
	// Set the environment variable to bypass the check for moving GC in tensor backed computations. The value must name the running toolchain release.
	if os.Getenv(envAssumeNoMovingGC) != "" {
		return
	}
	os.Setenv(envAssumeNoMovingGC, Release())
}

// Release returns the running Go release in the form "go1.N".
func Release() string {
	version := runtime.Version()
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
