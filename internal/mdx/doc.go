// Package mdx converts between the flat MDX-like markup used for draft
// bodies and the block/inline document tree defined in domain.
//
// The markup format supports ATX headings (# to ####), paragraphs,
// fenced code blocks, nested bullet and ordered lists, the inline spans
// **bold**, *italic* and `code`, and two self-closing embed components:
//
//	<ImageFigure src="/a.png" alt="..." caption="..." width={800} />
//	<VideoEmbed src="https://youtu.be/x" title="..." aspectRatio={1.78} />
//
// Parse never fails: malformed markup degrades to the nearest safe
// interpretation (usually a plain paragraph) rather than returning an
// error. Parse is a pure function of its input and holds no state across
// calls, so it is safe to invoke concurrently.
package mdx
