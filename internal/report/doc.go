// Package report writes status lines to their destinations.
//
// Writers:
//   - FileWriter: the report file, with a header and a separator line
//   - ConsoleWriter: bare status lines for the terminal
//   - MultiWriter: fans a result out to several writers in order
//
// Every result is written as soon as it is passed in. FileWriter does not
// buffer, so a crash mid-run leaves all completed lines on disk.
package report
