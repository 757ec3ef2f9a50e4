// Package compileinfo reports the build provenance of a binary from the
// metadata that the Go toolchain stamps into it.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c Info) String() string {
	mod := ""
	if c.Modified {
		mod = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v (%v).%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = bi.GoVersion
	out.Package = bi.Path
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
