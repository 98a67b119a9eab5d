/*
Package domain contains the core models shared by the route compiler, the graph
builder and the renderers.

It is kept pure and free of I/O, following the same Hexagonal Architecture rules
as the rest of camelgraph.

# Key Entities

  - Element: A node of the parsed route document (tag, attributes, text, children, line).
  - Node: A graph node emitted for a route construct (identity, label, shape, parent).
  - Graph: The ordered sequence of emitted nodes for one conversion run.
  - Shape: The closed set of diagram shapes a node can take.
*/
package domain
