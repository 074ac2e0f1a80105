// Package content classifies markdown-subset report content into display blocks.
package content

import (
	"regexp"
	"strings"
)

// Kind identifies the type of a classified block.
type Kind string

// Block kinds, in the priority order lines are tested against.
const (
	KindHeading1      Kind = "heading1"
	KindHeading2      Kind = "heading2"
	KindHeading3      Kind = "heading3"
	KindBoldParagraph Kind = "bold"
	KindBulletItem    Kind = "bullet"
	KindNumberedItem  Kind = "numbered"
	KindBlankLine     Kind = "blank"
	KindParagraph     Kind = "paragraph"
)

// Block is one classified line of content.
type Block struct {
	Kind Kind
	Text string
}

const boldMarker = "**"

var numberedPrefix = regexp.MustCompile(`^[0-9]+\. `)

// rule classifies a line when match reports true, yielding the display text.
type rule struct {
	kind  Kind
	match func(line string) (string, bool)
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{KindHeading1, prefix("# ")},
	{KindHeading2, prefix("## ")},
	{KindHeading3, prefix("### ")},
	{KindBoldParagraph, func(line string) (string, bool) {
		if strings.HasPrefix(line, boldMarker) && strings.HasSuffix(line, boldMarker) {
			return strings.ReplaceAll(line, boldMarker, ""), true
		}
		return "", false
	}},
	{KindBulletItem, prefix("- ")},
	{KindNumberedItem, func(line string) (string, bool) {
		loc := numberedPrefix.FindStringIndex(line)
		if loc == nil {
			return "", false
		}
		return line[loc[1]:], true
	}},
	{KindBlankLine, func(line string) (string, bool) {
		return "", strings.TrimSpace(line) == ""
	}},
}

func prefix(marker string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		return strings.CutPrefix(line, marker)
	}
}

// ClassifyLine returns the block for a single line. Lines matching no rule
// are paragraphs carrying the line verbatim.
func ClassifyLine(line string) Block {
	for _, r := range rules {
		if text, ok := r.match(line); ok {
			return Block{Kind: r.kind, Text: text}
		}
	}
	return Block{Kind: KindParagraph, Text: line}
}

// Classify splits text on newlines and classifies every line, one block per
// line in input order. Adjacent list lines are not merged.
func Classify(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = ClassifyLine(line)
	}
	return blocks
}
