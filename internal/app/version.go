package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version identifies the build. Release builds override it via
// -ldflags "-X github.com/agbru/calckit/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args contains a version flag. It is
// checked before flag parsing so -version works regardless of the other
// arguments.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version line, including the toolchain and
// platform the binary was built for.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "calckit %s (%s %s/%s)\n",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
