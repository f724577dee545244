// Package main provides the entry point for the urlstatus CLI.
//
// urlstatus checks whether a fixed list of image URLs is reachable. Each URL
// is requested once, in order, and its HTTP status (or the error that
// prevented a response) is printed and written to results.txt.
//
// Usage:
//
//	urlstatus
//	urlstatus -v
//
// See --help for all available options.
package main

// main is the entry point for urlstatus.
func main() {
	Execute()
}
