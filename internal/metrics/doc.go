// Package metrics samples local host metrics into immutable snapshots.
//
// A Snapshot is a point-in-time capture of CPU, memory, swap, disks, host
// metadata and processes. The dashboard takes a fresh one on every refresh
// tick, reads it for the length of one render pass and then drops it; nothing
// is kept between samples.
//
// Collector is the gopsutil-backed Source used in production. Tests and the
// dashboard model only depend on the Source interface.
package metrics
