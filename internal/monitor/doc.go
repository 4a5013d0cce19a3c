// Package monitor implements the full-screen system dashboard.
//
// The dashboard shows CPU, memory, swap, disk, host and process information
// for the local machine, with usage values colored by severity.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the latest snapshot, the viewport size and the scheduler
//   - Update: Processes messages (keystrokes, ticks, new snapshots)
//   - View: Returns the last composed frame as a string
//
// # Rendering Pipeline
//
// Rendering is pure and split into small steps:
//
//	Compose    - Partitions the viewport and runs every Panel in fixed order
//	Panel      - CPU, Memory, Swap, Disk, Host and Process renderers
//	Frame      - The ordered StyledRuns a compose call produced
//	Render     - Paints the runs onto a cell grid and styles them with a Palette
//
// Panels classify percentages with Classify and format values with the
// Format helpers. None of them read anything but the snapshot and the region
// they are given.
//
// # Message Flow
//
// The dashboard runs on a fixed tick:
//
//  1. tickMsg fires every input poll window plus tick sleep (110ms)
//  2. Every tenth tick, collectCmd() samples the metrics source
//  3. snapshotMsg arrives, the frame is recomposed and cached
//  4. View() returns the cached frame
//
// A sample never overlaps another one. A failed or timed out sample stops the
// dashboard; the error is available from Model.Err after the program exits.
//
// # Keyboard Shortcuts
//
//	q, Esc, Ctrl+C - Quit
package monitor
