/*
Package ports defines the driven ports (interfaces) for the conversion services.

These interfaces decouple the HTTP and MCP services from external implementations,
allowing them to work with various cache backends.

# Key Interfaces

  - ResultCache: Stores rendered diagrams keyed by CacheKey (e.g., in Memory or Redis).
*/
package ports
