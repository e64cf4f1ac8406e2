// Package version reports which release of the module is linked into the
// running binary. The value is read from the embedded build info and can be
// forced at link time:
//
//	go build -ldflags "-X github.com/kbukum/resultiter/version.Version=v1.2.0"
package version
