// Package metrics records generation statistics.
//
// Commands receive a Recorder. NoopRecorder is the default; the Prometheus
// implementation is swapped in when a textfile target is configured, and its
// registry is written in the node-exporter textfile format after each run.
package metrics
