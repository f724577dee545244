// Package runner drives a urlstatus run: it checks every URL in order,
// one at a time, and hands each result to a report.Writer before moving
// on to the next URL.
package runner
