package url

import (
	"net/url"
	"strings"
)

// IsScriptablePage reports whether a page can host injected scripts.
// Only plain http and https pages qualify; browser-internal pages such as
// chrome://settings or about:blank do not.
func IsScriptablePage(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	}
	return false
}
