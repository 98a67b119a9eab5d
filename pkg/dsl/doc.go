/*
Package dsl provides a fluent builder for constructing route documents in Go.

It produces the same element tree the XML parser yields, so generated or
test-only route definitions can be converted without writing XML first.
Every element receives a synthetic line number in construction order, which
keeps error locations meaningful.

Example usage:

	doc := dsl.New().
		Endpoint("orders", "jms:queue:orders").
		Route("inbound").
		From("file:inbox").
		Choice().
		When("simple", "${header.type} == 'order'").
		To("ref:orders").
		End().
		Otherwise().
		To("log:rejected").
		Build()

	g, err := camelgraph.New().ConvertDocument(ctx, doc)
*/
package dsl
