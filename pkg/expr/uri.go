package expr

import "strings"

// velocityScheme is the legacy component whose templates are re-read on every
// exchange unless content caching is switched on.
const velocityScheme = "velocity:"

// ComponentOptions applies per-component URI options before the URI is
// rendered. Currently it enables contentCache for velocity endpoints.
func ComponentOptions(uri string) string {
	if !strings.HasPrefix(uri, velocityScheme) || strings.Contains(uri, "contentCache=") {
		return uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&contentCache=true"
	}
	return uri + "?contentCache=true"
}
