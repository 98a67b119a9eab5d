package compiler

// KindOf exposes the handler kind of a tag to the external tests.
var KindOf = kindOf
