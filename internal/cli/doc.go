// Package cli implements the tokenorder command line.
//
// Commands:
//   - order <image>: recognize and confirm the order in a photo
//   - serve: run the MCP server on stdin and stdout
//   - menu: print the menu catalog
//   - version: print build information
//
// Every command reads the optional --config file. The order transcript and
// the MCP stream use stdout; logs use stderr.
package cli
