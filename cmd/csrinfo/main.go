// Command csrinfo inspects and transforms sparse matrices stored as JSON
// CSR documents.
//
// Usage:
//
//	csrinfo <command> [flags]
//
// Every command reads one matrix from -f (stdin by default) and writes JSON
// to stdout, or an aligned table with --table.
//
// Examples:
//
//	csrinfo check -f m.json
//	csrinfo rolling --kernel median --window 5 -f m.json
//	csrinfo convolve --shape hann --window 7 --normalize < m.json
//	csrinfo maxclip --bound b.json --offset 1.5 -f m.json
//	csrinfo stdev --stable --table -f m.json
//	csrinfo kernels
//
// Flags can also be set from CSRINFO_* environment variables or a config
// file passed with --config. CSRINFO_DEBUG=true enables debug logging.
package main

import "github.com/cwbudde/algo-sparse/cmd/csrinfo/commands"

func main() {
	commands.Execute()
}
