package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/bryan-cox/reportledger/internal/content"
	"github.com/bryan-cox/reportledger/internal/model"
)

// RenderHTML renders a report as an HTML fragment: a header with the report
// metadata followed by its classified content.
func RenderHTML(r model.Report) string {
	var b bytes.Buffer

	b.WriteString("<article>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(r.Title))
	if r.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(r.Description))
	}
	fmt.Fprintf(&b, "<p><strong>%s</strong> &middot; Categoria: %s &middot; Por %s &middot; %s</p>\n",
		html.EscapeString(string(r.Status)),
		html.EscapeString(model.CategoryLabel(r.Category)),
		html.EscapeString(r.Author),
		html.EscapeString(FormatDate(r.Date)))
	b.WriteString("<hr>\n")
	b.WriteString(RenderBlocksHTML(content.Classify(r.Content)))
	b.WriteString("</article>\n")

	return b.String()
}

// RenderBlocksHTML renders classified blocks as HTML, one element per block.
// Each run of consecutive bullet items is wrapped in a <ul>, and each run of
// numbered items in an <ol>.
func RenderBlocksHTML(blocks []content.Block) string {
	var b bytes.Buffer
	open := content.Kind("")

	closeList := func() {
		switch open {
		case content.KindBulletItem:
			b.WriteString("</ul>\n")
		case content.KindNumberedItem:
			b.WriteString("</ol>\n")
		}
		open = ""
	}

	for _, block := range blocks {
		text := html.EscapeString(block.Text)

		if block.Kind != open {
			closeList()
			switch block.Kind {
			case content.KindBulletItem:
				b.WriteString("<ul>\n")
				open = block.Kind
			case content.KindNumberedItem:
				b.WriteString("<ol>\n")
				open = block.Kind
			}
		}

		switch block.Kind {
		case content.KindHeading1:
			fmt.Fprintf(&b, "<h1>%s</h1>\n", text)
		case content.KindHeading2:
			fmt.Fprintf(&b, "<h2>%s</h2>\n", text)
		case content.KindHeading3:
			fmt.Fprintf(&b, "<h3>%s</h3>\n", text)
		case content.KindBoldParagraph:
			fmt.Fprintf(&b, "<p><strong>%s</strong></p>\n", text)
		case content.KindBulletItem, content.KindNumberedItem:
			fmt.Fprintf(&b, "<li>%s</li>\n", text)
		case content.KindBlankLine:
			b.WriteString("<br>\n")
		default:
			fmt.Fprintf(&b, "<p>%s</p>\n", text)
		}
	}
	closeList()

	return b.String()
}
