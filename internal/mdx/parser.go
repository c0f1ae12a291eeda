package mdx

import (
	"regexp"
	"strings"

	"github.com/inkforge-labs/inkforge-cli/internal/core/domain"
)

// Default bounds for the ImageFigure width clamp.
const (
	DefaultMinImageWidth = 0
	DefaultMaxImageWidth = 2000
)

// Options control attribute validation during parsing.
type Options struct {
	// MinImageWidth is the lower bound of the ImageFigure width clamp.
	MinImageWidth int

	// MaxImageWidth is the upper bound of the ImageFigure width clamp.
	MaxImageWidth int
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return Options{
		MinImageWidth: DefaultMinImageWidth,
		MaxImageWidth: DefaultMaxImageWidth,
	}
}

var (
	headingRe = regexp.MustCompile(`^(#{1,4})\s+(.*\S)\s*$`)
	bulletRe  = regexp.MustCompile(`^(\s*)-\s+(.*)$`)
	orderedRe = regexp.MustCompile(`^(\s*)\d+\.\s+(.*)$`)
)

// Parse converts markup into a document tree using default options.
// It never fails; malformed input degrades to paragraph blocks.
func Parse(source string) []domain.Block {
	return ParseWithOptions(source, DefaultOptions())
}

// ParseWithOptions converts markup into a document tree.
func ParseWithOptions(source string, opts Options) []domain.Block {
	if opts.MaxImageWidth <= opts.MinImageWidth {
		opts = DefaultOptions()
	}
	p := &parser{opts: opts}
	return p.parse(source)
}

// parser holds the scan state for a single Parse call: the open
// paragraph buffer, the stack of open list contexts, and the open code
// fence buffer. All state is local to the call.
type parser struct {
	opts Options

	out   []domain.Block
	para  []string
	lists []*listContext

	inCode    bool
	codeLang  string
	codeLines []string
}

// listContext tracks one level of list nesting until it is closed and
// converted into a block.
type listContext struct {
	ordered bool
	indent  int
	items   []*listItem
}

// listItem accumulates one list entry: its own text plus any nested
// blocks attached under it.
type listItem struct {
	lines    []string
	children []domain.Block
}

func (p *parser) parse(source string) []domain.Block {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	for _, line := range strings.Split(source, "\n") {
		p.scanLine(line)
	}

	p.flushParagraph()
	p.closeAllLists()
	if p.inCode {
		// Unterminated fence is tolerated, not an error.
		p.flushCode()
	}
	return p.out
}

// scanLine routes one line through the block-level state machine.
// The checks run in priority order: fence toggle, in-fence verbatim,
// blank line, embed component, heading, list item, plain text.
func (p *parser) scanLine(line string) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") {
		if p.inCode {
			p.flushCode()
			return
		}
		p.flushParagraph()
		p.closeAllLists()
		p.inCode = true
		p.codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		return
	}

	if p.inCode {
		p.codeLines = append(p.codeLines, line)
		return
	}

	if trimmed == "" {
		p.flushParagraph()
		p.closeAllLists()
		return
	}

	if name, ok := embedTagName(trimmed); ok {
		p.flushParagraph()
		p.closeAllLists()
		if block, ok := p.parseEmbed(name, trimmed); ok {
			p.out = append(p.out, block)
			return
		}
		// Invalid embed degrades to paragraph text.
		p.para = append(p.para, trimmed)
		return
	}

	if m := headingRe.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.closeAllLists()
		p.out = append(p.out, domain.Block{
			Kind:   domain.KindHeading,
			Level:  len(m[1]),
			Inline: ParseInline(m[2]),
		})
		return
	}

	if m := bulletRe.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.addListItem(len(m[1]), false, m[2])
		return
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.addListItem(len(m[1]), true, m[2])
		return
	}

	// A plain-text line after a list terminates it.
	p.closeAllLists()
	p.para = append(p.para, trimmed)
}

// addListItem reconciles an incoming item against the stack of open list
// contexts. Contexts deeper than the item's indent are closed, as is a
// same-indent context whose bullet/ordered style differs; a context
// shallower than the item opens a new nested level.
func (p *parser) addListItem(indent int, ordered bool, text string) {
	for len(p.lists) > 0 {
		top := p.lists[len(p.lists)-1]
		if top.indent > indent || (top.indent == indent && top.ordered != ordered) {
			p.popList()
			continue
		}
		break
	}

	if len(p.lists) == 0 || p.lists[len(p.lists)-1].indent < indent {
		p.lists = append(p.lists, &listContext{ordered: ordered, indent: indent})
	}

	top := p.lists[len(p.lists)-1]
	top.items = append(top.items, &listItem{lines: []string{text}})
}

// popList closes the innermost list context and attaches the resulting
// block to the most recent item of the enclosing context, or to the top
// level when none is open. A parent that has no items yet gets an empty
// placeholder item to carry the nested list.
func (p *parser) popList() {
	closed := p.lists[len(p.lists)-1]
	p.lists = p.lists[:len(p.lists)-1]
	block := closed.toBlock()

	if len(p.lists) == 0 {
		p.out = append(p.out, block)
		return
	}

	parent := p.lists[len(p.lists)-1]
	if len(parent.items) == 0 {
		parent.items = append(parent.items, &listItem{})
	}
	item := parent.items[len(parent.items)-1]
	item.children = append(item.children, block)
}

func (p *parser) closeAllLists() {
	for len(p.lists) > 0 {
		p.popList()
	}
}

// toBlock converts a closed list context into a list block. Each item's
// joined text becomes its lead paragraph; an item with no content at all
// gets an empty placeholder paragraph so every item has at least one
// child block.
func (c *listContext) toBlock() domain.Block {
	kind := domain.KindBulletList
	if c.ordered {
		kind = domain.KindOrderedList
	}

	items := make([]domain.ListItem, 0, len(c.items))
	for _, it := range c.items {
		var blocks []domain.Block
		text := strings.TrimSpace(strings.Join(it.lines, " "))
		if text != "" {
			blocks = append(blocks, domain.Block{
				Kind:   domain.KindParagraph,
				Inline: ParseInline(text),
			})
		}
		blocks = append(blocks, it.children...)
		if len(blocks) == 0 {
			blocks = append(blocks, domain.Block{Kind: domain.KindParagraph})
		}
		items = append(items, domain.ListItem{Blocks: blocks})
	}

	return domain.Block{Kind: kind, Items: items}
}

// flushParagraph joins the buffered line fragments with single spaces and
// emits a paragraph block. An empty buffer emits nothing.
func (p *parser) flushParagraph() {
	if len(p.para) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(p.para, " "))
	p.para = nil
	if text == "" {
		return
	}
	p.out = append(p.out, domain.Block{
		Kind:   domain.KindParagraph,
		Inline: ParseInline(text),
	})
}

func (p *parser) flushCode() {
	p.out = append(p.out, domain.Block{
		Kind:     domain.KindCodeBlock,
		Language: p.codeLang,
		Text:     strings.Join(p.codeLines, "\n"),
	})
	p.inCode = false
	p.codeLang = ""
	p.codeLines = nil
}
