package linkfix

import (
	"net/url"
	"regexp"
	"strings"
)

// hrefPattern captures the href attribute of anchor tags.
var hrefPattern = regexp.MustCompile(`<a[^>]+href="([^"]+)"`)

// RewriteLinks maps intra-export anchor targets through resolve and
// re-encodes them as web-safe relative paths. Remote URLs, fragments,
// mail links, and data URLs pass through untouched. The resolve function
// receives the decoded target and returns the filename issued for it; a
// target it does not know is returned unchanged, so outside references
// survive as-is.
func RewriteLinks(html, currentFilePath string, resolve func(string) string) string {
	return hrefPattern.ReplaceAllStringFunc(html, func(tag string) string {
		match := hrefPattern.FindStringSubmatch(tag)
		if match == nil {
			return tag
		}
		href := match[1]
		if isExternalRef(href) {
			return tag
		}

		decoded, err := url.PathUnescape(href)
		if err != nil {
			decoded = href
		}

		mapped := resolve(decoded)
		if mapped == decoded {
			return tag
		}

		return strings.Replace(tag, `href="`+href+`"`, `href="`+WebSafePath(mapped, currentFilePath)+`"`, 1)
	})
}

func isExternalRef(href string) bool {
	for _, prefix := range []string{"http://", "https://", "mailto:", "data:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}
