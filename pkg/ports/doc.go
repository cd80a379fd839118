/*
Package ports defines the driven ports (interfaces) around the search core.

These interfaces decouple the engine and the Solver facade from concrete
storage, input and display implementations.

# Key Interfaces

  - StateLoader: Supplies the initial symbols of a puzzle (file, inline list).
  - Renderer: Receives one Frame per applied action during playback.
  - SolutionStore: Caches finished Solutions keyed by puzzle and start state.
  - DistributedLocker: Serializes solves of the same start state across replicas.
*/
package ports
