// Package domain defines the core business entities for diacritice.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: An order-preserving slice of the input text
//   - Generation: The tagged outcome of one external model call
//   - EngineResult: The restored text and the engine that produced it
//   - RestoreConfig: The explicit per-call configuration of a restoration
//   - AppSettings: Persisted application settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
