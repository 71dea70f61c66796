// Package options contains the program options.
package options

// Program options of the interpreter.
type Program struct {
	Input string // path of the program to run

	Cells      int    // initial tape length
	Extensible bool   // allow the tape to grow at the high end
	Config     string // optional TOML file with default settings

	List    bool // print the parsed instruction listing instead of running
	Debug   bool // enable debug logging
	Quiet   bool // perform operations quietly
	Version bool // print version and exit
}
