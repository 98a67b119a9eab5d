package compiler

// Construct is the closed set of route tags the compiler understands.
// Any tag outside this set resolves to ConstructUnknown and aborts the run.
type Construct int

const (
	ConstructUnknown Construct = iota

	// Containers and branch arms (pass-through).
	ConstructCamelContext
	ConstructRouteContext
	ConstructRoutes
	ConstructDataFormats
	ConstructWhen
	ConstructOtherwise
	ConstructDoFinally

	// Route root.
	ConstructRoute

	// Structural.
	ConstructChoice
	ConstructMulticast
	ConstructRecipientList
	ConstructSplit
	ConstructAggregate
	ConstructLoop
	ConstructFilter

	// Terminal.
	ConstructFrom
	ConstructTo
	ConstructToD
	ConstructWireTap
	ConstructEnrich
	ConstructPollEnrich
	ConstructSetBody
	ConstructTransform
	ConstructBean
	ConstructProcess

	// Expressions.
	ConstructSimple
	ConstructConstant
	ConstructGroovy
	ConstructXPath
	ConstructJSONPath
	ConstructXQuery
	ConstructJavaScript
	ConstructSpEL
	ConstructLanguage
	ConstructTokenize
	ConstructHeader
	ConstructExchangeProperty
	ConstructMethod
	ConstructCorrelationExpression

	// Accepted without diagram content.
	ConstructUnsupported
)

// Kind groups constructs by the handler behaviour they share.
type Kind int

const (
	KindUnknown Kind = iota
	KindPassThrough
	KindRoute
	KindStructural
	KindTerminal
	KindExpression
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindPassThrough:
		return "pass-through"
	case KindRoute:
		return "route"
	case KindStructural:
		return "structural"
	case KindTerminal:
		return "terminal"
	case KindExpression:
		return "expression"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// tagPropertyPlaceholder is configuration only and is skipped before dispatch.
const tagPropertyPlaceholder = "propertyPlaceholder"

var constructs = map[string]Construct{
	"camelContext": ConstructCamelContext,
	"routeContext": ConstructRouteContext,
	"routes":       ConstructRoutes,
	"dataFormats":  ConstructDataFormats,
	"when":         ConstructWhen,
	"otherwise":    ConstructOtherwise,
	"doFinally":    ConstructDoFinally,

	"route": ConstructRoute,

	"choice":        ConstructChoice,
	"multicast":     ConstructMulticast,
	"recipientList": ConstructRecipientList,
	"split":         ConstructSplit,
	"aggregate":     ConstructAggregate,
	"loop":          ConstructLoop,
	"filter":        ConstructFilter,

	"from":       ConstructFrom,
	"to":         ConstructTo,
	"toD":        ConstructToD,
	"wireTap":    ConstructWireTap,
	"enrich":     ConstructEnrich,
	"pollEnrich": ConstructPollEnrich,
	"setBody":    ConstructSetBody,
	"transform":  ConstructTransform,
	"bean":       ConstructBean,
	"process":    ConstructProcess,

	"simple":                ConstructSimple,
	"constant":              ConstructConstant,
	"groovy":                ConstructGroovy,
	"xpath":                 ConstructXPath,
	"jsonpath":              ConstructJSONPath,
	"xquery":                ConstructXQuery,
	"javaScript":            ConstructJavaScript,
	"spel":                  ConstructSpEL,
	"language":              ConstructLanguage,
	"tokenize":              ConstructTokenize,
	"header":                ConstructHeader,
	"exchangeProperty":      ConstructExchangeProperty,
	"method":                ConstructMethod,
	"correlationExpression": ConstructCorrelationExpression,
}

// unsupportedTags are accepted syntactically but contribute nothing to the diagram.
// Their subtrees are dropped.
var unsupportedTags = []string{
	"log",
	"description",
	"endpoint",
	"json",
	"jaxb",
	"base64",
	"errorHandler",
	"redeliveryPolicyProfile",
	"onException",
	"threadPoolProfile",
	"restConfiguration",
	"rest",
	"get",
	"post",
	"param",
	"componentProperty",
	"dataFormatProperty",
	"convertBodyTo",
	"unmarshal",
	"marshal",
	"setHeader",
	"setProperty",
	"setExchangePattern",
	"inOnly",
	"removeHeaders",
	"removeHeader",
	"doTry",
	"doCatch",
	"onWhen",
	"handled",
	"transacted",
	"threads",
	"delay",
	"throwException",
	"stop",
	"completionPredicate",
	"completionSize",
	"completionTimeout",
}

func init() {
	for _, tag := range unsupportedTags {
		constructs[tag] = ConstructUnsupported
	}
}

// lookupConstruct maps a local tag name to its construct.
func lookupConstruct(tag string) Construct {
	if c, ok := constructs[tag]; ok {
		return c
	}
	return ConstructUnknown
}

// kindOf returns the handler kind of a tag.
func kindOf(tag string) Kind {
	return lookupConstruct(tag).kind()
}

func (c Construct) kind() Kind {
	switch {
	case c == ConstructUnknown:
		return KindUnknown
	case c == ConstructRoute:
		return KindRoute
	case c >= ConstructCamelContext && c <= ConstructDoFinally:
		return KindPassThrough
	case c >= ConstructChoice && c <= ConstructFilter:
		return KindStructural
	case c >= ConstructFrom && c <= ConstructProcess:
		return KindTerminal
	case c >= ConstructSimple && c <= ConstructCorrelationExpression:
		return KindExpression
	default:
		return KindUnsupported
	}
}
