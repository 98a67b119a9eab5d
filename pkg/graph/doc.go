/*
Package graph builds the ordered node sequence produced by a conversion run.

Nodes are appended once and never mutated. Every node gets a fresh identity
(a random UUID by default) unless the caller derives one, as route sources do.

	b := graph.New()
	choice := b.Emit(domain.ShapeContentBasedRouter, "choice", rootID, 1, 12)
	b.Emit(domain.ShapeRectangle, "jms:queue:a", choice, 2, 14)
	g := b.Graph()
*/
package graph
