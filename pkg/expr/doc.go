// Package expr rewrites Camel expression text and endpoint URIs so they can be
// embedded in diagram labels.
package expr
