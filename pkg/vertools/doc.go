// Package vertools reads and bumps the semantic version that a Python
// package declares in its __init__.py.
//
// It provides functionalities for:
//   - Extracting a major.minor.micro version from a line such as
//     __version__ = "2.4.8" using a single anchored pattern over the file.
//   - Incrementing the major, minor or micro component, resetting every
//     lower-order component to zero.
//   - Rewriting the version in place without touching the rest of the file.
//
// Components are arbitrary-precision integers, so a bump never wraps.
// Pre-release and build metadata are not supported.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "github.com/pkgtools/vertools/pkg/vertools"
//	)
//
//	func main() {
//	    res, err := vertools.Run("mypkg/__init__.py", vertools.Minor, false)
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Println(res.Old, "->", res.New)
//	}
package vertools
