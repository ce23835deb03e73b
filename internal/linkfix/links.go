package linkfix

import (
	"net/url"
	"path/filepath"
	"strings"
)

// WebSafePath converts a note path into a relative link that resolves
// over the file:// protocol. Backslashes are normalized, the path is made
// relative to the directory of currentFilePath when one is given, and
// every segment is URL-encoded. Plain relative paths gain a "./" prefix
// so browsers resolve them against the current document.
func WebSafePath(notePath, currentFilePath string) string {
	if notePath == "" {
		return ""
	}

	notePath = strings.ReplaceAll(notePath, "\\", "/")
	currentFilePath = strings.ReplaceAll(currentFilePath, "\\", "/")

	rel := notePath
	if currentFilePath != "" {
		if r, err := filepath.Rel(filepath.Dir(currentFilePath), notePath); err == nil {
			rel = filepath.ToSlash(r)
		}
	}

	parts := strings.Split(rel, "/")
	encoded := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		encoded = append(encoded, url.PathEscape(part))
	}
	webPath := strings.Join(encoded, "/")

	if !strings.HasPrefix(webPath, "./") && !strings.HasPrefix(webPath, "../") && !strings.HasPrefix(webPath, "/") {
		webPath = "./" + webPath
	}
	return webPath
}
