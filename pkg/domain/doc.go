/*
Package domain contains the core domain models shared by the puzzler engine and its adapters.

It defines the vocabulary of a search run, such as results, statuses, solution records
and render frames. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Result: The typed outcome of one search invocation (Status, Path, NodesExpanded).
  - Status: Found, NotFound, Exhausted or Timeout. Only Found carries a path.
  - Solution: A serializable record of a finished search, used by stores and transports.
  - Frame: What a renderer receives after each applied action.
  - SearchHooks: Callbacks for observability (logging, metrics).
*/
package domain
