package linkfix

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
)

// imgTagPattern captures the src attribute of img tags.
var imgTagPattern = regexp.MustCompile(`<img[^>]+src="([^"]+)"[^>]*>`)

// Bundler inlines local resources referenced by exported HTML so the
// result is a self-contained file.
type Bundler struct {
	// BaseDir anchors relative resource paths.
	BaseDir string
	// Logger receives per-resource debug records. Nil disables logging.
	Logger *slog.Logger
}

// Rewrite embeds local images referenced by html as base64 data URLs.
// References that are already data URLs or point at remote hosts are left
// alone, and so is any reference whose resource cannot be read or is not
// an image: embedding failure must never break the note.
func (b *Bundler) Rewrite(html string) string {
	return imgTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		match := imgTagPattern.FindStringSubmatch(tag)
		if match == nil {
			return tag
		}
		src := match[1]
		if strings.HasPrefix(src, "data:") || strings.HasPrefix(src, "http") {
			return tag
		}

		dataURL, size, err := b.embed(src)
		if err != nil {
			if b.Logger != nil {
				b.Logger.Debug("resource left unembedded", "src", src, "error", err)
			}
			return tag
		}
		if b.Logger != nil {
			b.Logger.Debug("resource embedded", "src", src, "size", humanize.IBytes(uint64(size)))
		}
		return strings.Replace(tag, `src="`+src+`"`, `src="`+dataURL+`"`, 1)
	})
}

// embed reads a local resource and returns it as a data URL.
func (b *Bundler) embed(src string) (string, int, error) {
	fullPath := filepath.Join(b.BaseDir, filepath.FromSlash(src))

	mimeType := mime.TypeByExtension(filepath.Ext(fullPath))
	if !strings.HasPrefix(mimeType, "image/") {
		return "", 0, fmt.Errorf("not an image resource: %s", src)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", 0, err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:" + mimeType + ";base64," + encoded, len(data), nil
}
