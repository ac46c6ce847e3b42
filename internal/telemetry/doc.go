// Package telemetry sets up structured logging and Prometheus metrics.
//
// Logs always go to stderr or another caller-supplied writer, never to
// stdout: stdout carries the order transcript or the MCP protocol stream.
//
// Metrics live in a private registry so that tests and multiple servers in
// one process do not collide. Metrics implements order.Recorder and can wrap
// an order.RegionDetector:
//
//	m := telemetry.NewMetrics("tokenorder")
//	flow := order.NewFlow(catalog, os.Stdout, confirmer, order.WithRecorder(m))
//	res, err := flow.Process(ctx, m.InstrumentDetector(detector), img)
//	http.Handle("/metrics", m.Handler())
package telemetry
