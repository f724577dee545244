// Package config provides the configuration of a urlstatus run: the
// request timeout, the User-Agent header, the report file path and the
// list of URLs to check.
//
// The URL list is compiled into the binary from targets.yaml.
package config
