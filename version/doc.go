// Package version reports how the reddish binary was built.
//
// Version, commit, branch and build time are set at link time; values left
// empty are filled from the module's embedded VCS stamp when present:
//
//	go build -ldflags "-X github.com/kbukum/reddish/version.Version=1.2.0 \
//	    -X github.com/kbukum/reddish/version.BuildTime=2024-01-15T10:30:00Z" ./cmd/reddish
package version
