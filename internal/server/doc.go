// Package server implements the MCP (Model Context Protocol) server for
// token order recognition.
//
// The server speaks JSON-RPC 2.0 over a line-delimited stream, normally
// stdin and stdout:
//   - Input: one JSON-RPC request per line
//   - Output: one JSON-RPC response per line
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load a photo and report its metadata
//   - order_menu: List the menu catalog
//   - order_detect_regions: Find colored tokens and their shapes
//   - order_recognize: Run the full order flow on a photo
//   - order_annotate: Draw dish labels over the selected tokens
//
// order_recognize never blocks on a human. The optional "confirm" argument
// is the answer to the confirmation prompt; when it is missing the order
// ends as canceled.
//
// # Image Caching
//
// Photos are cached by path and reused across tool calls for the lifetime
// of the server.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string as data. Order rule violations are not
// errors; they are part of the order_recognize result.
//
// # Usage
//
//	srv := server.New(catalog, detector, server.WithLogger(logger))
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    return err
//	}
package server
