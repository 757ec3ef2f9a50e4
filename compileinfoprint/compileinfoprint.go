// compileinfoprint is imported for the side effect of printing the build
// provenance to os.Stderr
package compileinfoprint

import "github.com/carbocation/minmap/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
