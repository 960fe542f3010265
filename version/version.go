package version

import "fmt"

// GitCommit and GitTag are set at build time with -ldflags -X.
var GitCommit = "unknown"
var GitTag = "dev"
var UserAgent string

func init() {
	UserAgent = fmt.Sprintf("coderctl/%s+%s", GitTag, GitCommit)
}
