package domain

// XML namespaces understood by the parser.
const (
	// NamespaceCamel holds route constructs (camelContext, route, from, to...).
	NamespaceCamel = "http://camel.apache.org/schema/spring"
	// NamespaceBeans holds collaborator declarations (bean id/class).
	NamespaceBeans = "http://www.springframework.org/schema/beans"
)

// Attribute names read by the compiler.
const (
	AttrID     = "id"
	AttrURI    = "uri"
	AttrRef    = "ref"
	AttrClass  = "class"
	AttrMethod = "method"
	AttrToken  = "token"
	AttrBean   = "bean"
)

// RefPrefix marks a destination URI that must be resolved through the endpoint registry.
const RefPrefix = "ref:"
