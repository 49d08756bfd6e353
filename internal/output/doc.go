// Package output renders record lists to stdout or a file in one of three
// formats: text (one record per line, the default), json (one object per
// line), and table.
package output
