/*
Package camelgraph turns Apache Camel routes written in the Spring XML DSL into
an Enterprise Integration Patterns diagram.

The route document is parsed into an element tree, its endpoint and bean
declarations are collected in a pre-pass, and every route container is then
walked depth-first. Each supported construct becomes a graph node with a shape
(polling consumer, content-based router, splitter, ...), a label and a link to
its parent. The resulting graph can be rendered as a draw.io CSV import,
a Mermaid flowchart, JSON or YAML.

# Constructs

Every tag the converter sees falls into exactly one class:

  - Structural: emits a node and recurses with it as parent (choice, multicast, split, ...).
  - Terminal: emits a node and stops (from, to, toD, setBody, wireTap, ...).
  - Pass-through: emits nothing and recurses with the inherited parent (when, otherwise, ...).
  - Unsupported: accepted and skipped together with its subtree (log, setHeader, ...).

Any other tag aborts the conversion with an error wrapping ErrUnknownConstruct.
Silently dropping a construct would produce a diagram that looks complete but is not.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/camelgraph"
	)

	func main() {
		conv := camelgraph.New(camelgraph.WithCollaborators(true))

		g, err := conv.ConvertFile(context.Background(), "camel-context.xml")
		if err != nil {
			log.Fatal(err)
		}

		if err := camelgraph.Render(os.Stdout, g, camelgraph.RenderOptions{Format: camelgraph.FormatDrawIO}); err != nil {
			log.Fatal(err)
		}
	}
*/
package camelgraph
