package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bryan-cox/reportledger/internal/content"
	"github.com/bryan-cox/reportledger/internal/model"
)

// DisplayDateLayout formats dates the way the pt-BR locale does.
const DisplayDateLayout = "02/01/2006"

// Text strings for terminal output.
const (
	TextHeaderList      = "Relatórios"
	TextHeaderDashboard = "Painel"
	TextHeaderRecent    = "Relatórios Recentes"
	TextEmptyList       = "Nenhum relatório encontrado."
	TextNoGrowth        = "n/d"
)

// FormatDate formats a report date for display.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(DisplayDateLayout)
}

// Printer writes reports to a terminal or any other writer.
type Printer struct {
	out    io.Writer
	styles styles
}

// NewPrinter returns a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styles: newStyles(out)}
}

// PrintList prints a report list. An empty list prints the empty state.
func (p *Printer) PrintList(reports []model.Report) {
	fmt.Fprintf(p.out, "%s (%d)\n", p.styles.title.Render(TextHeaderList), len(reports))
	if len(reports) == 0 {
		fmt.Fprintln(p.out, p.styles.muted.Render(TextEmptyList))
		return
	}
	for _, r := range reports {
		fmt.Fprintf(p.out, "\n#%d %s %s\n", r.ID, p.styles.statusBadge(r.Status), p.styles.title.Render(r.Title))
		if r.Description != "" {
			fmt.Fprintf(p.out, "    %s\n", r.Description)
		}
		meta := fmt.Sprintf("Por %s · %s · %s", r.Author, FormatDate(r.Date), model.CategoryLabel(r.Category))
		fmt.Fprintf(p.out, "    %s\n", p.styles.muted.Render(meta))
	}
}

// PrintReport prints the report header followed by its rendered content.
func (p *Printer) PrintReport(r model.Report) {
	fmt.Fprintln(p.out, p.styles.title.Render(r.Title))
	if r.Description != "" {
		fmt.Fprintln(p.out, r.Description)
	}
	meta := fmt.Sprintf("Categoria: %s  Por %s  %s", model.CategoryLabel(r.Category), r.Author, FormatDate(r.Date))
	fmt.Fprintf(p.out, "%s  %s\n", p.styles.statusBadge(r.Status), p.styles.muted.Render(meta))
	fmt.Fprintln(p.out, strings.Repeat("─", 40))
	p.PrintBlocks(content.Classify(r.Content))
}

// PrintBlocks prints classified content, one line per block. Consecutive
// numbered items are numbered from one.
func (p *Printer) PrintBlocks(blocks []content.Block) {
	ordinal := 0
	for _, b := range blocks {
		if b.Kind == content.KindNumberedItem {
			ordinal++
		} else {
			ordinal = 0
		}

		switch b.Kind {
		case content.KindHeading1:
			fmt.Fprintln(p.out, p.styles.heading1.Render(b.Text))
		case content.KindHeading2:
			fmt.Fprintln(p.out, p.styles.heading2.Render(b.Text))
		case content.KindHeading3:
			fmt.Fprintln(p.out, p.styles.heading3.Render(b.Text))
		case content.KindBoldParagraph:
			fmt.Fprintln(p.out, p.styles.bold.Render(b.Text))
		case content.KindBulletItem:
			fmt.Fprintf(p.out, "  • %s\n", p.styles.body.Render(b.Text))
		case content.KindNumberedItem:
			fmt.Fprintf(p.out, "  %d. %s\n", ordinal, p.styles.body.Render(b.Text))
		case content.KindBlankLine:
			fmt.Fprintln(p.out)
		default:
			fmt.Fprintln(p.out, p.styles.body.Render(b.Text))
		}
	}
}

// PrintDashboard prints the dashboard figures and the recent reports.
func (p *Printer) PrintDashboard(s Summary) {
	fmt.Fprintln(p.out, p.styles.title.Render(TextHeaderDashboard))
	fmt.Fprintf(p.out, "    Total de Relatórios: %d\n", s.Total)
	fmt.Fprintf(p.out, "    Relatórios Pendentes: %d\n", s.ByStatus[model.StatusPending])
	fmt.Fprintf(p.out, "    Relatórios em Revisão: %d\n", s.ByStatus[model.StatusInReview])
	fmt.Fprintf(p.out, "    Relatórios Aprovados: %d\n", s.ByStatus[model.StatusApproved])
	fmt.Fprintf(p.out, "    Taxa de Crescimento: %s\n", formatGrowth(s))

	fmt.Fprintf(p.out, "\n%s\n", p.styles.title.Render(TextHeaderRecent))
	if len(s.Recent) == 0 {
		fmt.Fprintln(p.out, p.styles.muted.Render(TextEmptyList))
		return
	}
	for _, r := range s.Recent {
		fmt.Fprintf(p.out, "    #%d %s %s · %s · %s\n",
			r.ID, p.styles.statusBadge(r.Status), r.Title, r.Author, FormatDate(r.Date))
	}
}

func formatGrowth(s Summary) string {
	if !s.HasGrowth {
		return TextNoGrowth
	}
	return fmt.Sprintf("%+.0f%%", s.Growth)
}
