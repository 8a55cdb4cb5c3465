// Package ports defines the interfaces that connect the CLI to its output
// adapters.
//
// Every adapter consumes the finished point cloud through the same chunked
// submission as an on-screen renderer ([batch.Renderer]); the interfaces here
// add what the CLI needs beyond that.
//
//   - [FileExporter]: accumulates placements and writes them to a file
//   - [RunStore]: persists a run and its placements
//
// Implementations live in internal/adapters (echarts, plot, sqlite).
package ports
