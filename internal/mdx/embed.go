package mdx

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// Embed component names recognised by the parser.
const (
	imageFigureTag = "ImageFigure"
	videoEmbedTag  = "VideoEmbed"
)

// attrRe matches key="value", key='value' and key={jsonLiteral} pairs.
// Quoted values may escape the quote character and backslash.
var attrRe = regexp.MustCompile(`(\w+)\s*=\s*(?:"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)'|\{([^}]*)\})`)

// embedTagName reports whether a trimmed line is shaped like one of the
// two self-closing embed components, and which one.
func embedTagName(trimmed string) (string, bool) {
	if !strings.HasSuffix(trimmed, "/>") {
		return "", false
	}
	for _, name := range []string{imageFigureTag, videoEmbedTag} {
		rest, ok := strings.CutPrefix(trimmed, "<"+name)
		if !ok {
			continue
		}
		// Require a boundary so <ImageFigureX .../> is not an embed.
		if rest == "/>" || rest[0] == ' ' || rest[0] == '\t' {
			return name, true
		}
	}
	return "", false
}

// parseEmbed extracts and validates the attributes of an embed line.
// It reports false when validation fails, in which case the caller
// degrades the line to paragraph text.
func (p *parser) parseEmbed(name, line string) (domain.Block, bool) {
	attrs := parseAttributes(line)
	switch name {
	case imageFigureTag:
		return p.parseImageFigure(attrs)
	case videoEmbedTag:
		return parseVideoEmbed(attrs)
	}
	return domain.Block{}, false
}

// parseAttributes scans all attribute pairs on a line into a bag of raw
// values. JSON literals that fail to parse leave their key unset rather
// than failing the scan.
func parseAttributes(line string) map[string]any {
	attrs := make(map[string]any)
	for _, m := range attrRe.FindAllStringSubmatchIndex(line, -1) {
		key := line[m[2]:m[3]]
		switch {
		case m[4] >= 0:
			attrs[key] = unescapeQuoted(line[m[4]:m[5]])
		case m[6] >= 0:
			attrs[key] = unescapeQuoted(line[m[6]:m[7]])
		default:
			var v any
			if err := json.Unmarshal([]byte(line[m[8]:m[9]]), &v); err == nil {
				attrs[key] = v
			}
		}
	}
	return attrs
}

// parseImageFigure validates an ImageFigure attribute bag. src is
// mandatory and must pass URL sanitisation; width is clamped into the
// configured range, never rejected.
func (p *parser) parseImageFigure(attrs map[string]any) (domain.Block, bool) {
	src, ok := sanitizeURL(stringAttr(attrs, "src"), true)
	if !ok {
		return domain.Block{}, false
	}

	fig := &domain.ImageFigure{
		Src:     src,
		Alt:     stringAttr(attrs, "alt"),
		Caption: stringAttr(attrs, "caption"),
	}
	if w, ok := numberAttr(attrs, "width"); ok {
		clamped := clampInt(int(w), p.opts.MinImageWidth, p.opts.MaxImageWidth)
		fig.Width = &clamped
	}

	return domain.Block{Kind: domain.KindImageFigure, Image: fig}, true
}

// parseVideoEmbed validates a VideoEmbed attribute bag. src must be an
// absolute http(s) URL; the provider is derived from the host unless
// given explicitly; aspectRatio must be a positive finite number or it
// is dropped.
func parseVideoEmbed(attrs map[string]any) (domain.Block, bool) {
	src := strings.TrimSpace(stringAttr(attrs, "src"))
	u, err := url.Parse(src)
	if err != nil {
		return domain.Block{}, false
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return domain.Block{}, false
	}

	provider := strings.ToLower(strings.TrimSpace(stringAttr(attrs, "provider")))
	if provider == "" {
		provider = deriveProvider(u.Hostname())
	}

	video := &domain.VideoEmbed{
		Src:      u.String(),
		Title:    strings.TrimSpace(stringAttr(attrs, "title")),
		Provider: provider,
	}
	if r, ok := numberAttr(attrs, "aspectRatio"); ok && r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r) {
		video.AspectRatio = &r
	}

	return domain.Block{Kind: domain.KindVideoEmbed, Video: video}, true
}

// deriveProvider maps a video host to a provider name.
func deriveProvider(hostname string) string {
	host := strings.TrimPrefix(strings.ToLower(hostname), "www.")
	switch host {
	case "youtube.com", "youtu.be", "youtube-nocookie.com":
		return "youtube"
	case "vimeo.com", "player.vimeo.com":
		return "vimeo"
	default:
		return "generic"
	}
}

// sanitizeURL validates a URL for use in an embed src. Absolute URLs
// must be http(s); script-injection schemes (javascript:, data:, and
// friends) are rejected. Relative paths are accepted when allowRelative
// is set. Protocol-relative URLs are rejected outright.
func sanitizeURL(raw string, allowRelative bool) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
		return u.String(), true
	case "":
		if !allowRelative || u.Host != "" {
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}

// unescapeQuoted resolves the \" \' and \\ escapes inside a quoted
// attribute value.
func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\'', '\\':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func stringAttr(attrs map[string]any, key string) string {
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func numberAttr(attrs map[string]any, key string) (float64, bool) {
	v, ok := attrs[key].(float64)
	return v, ok
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
