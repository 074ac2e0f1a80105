package report

import (
	"strings"
	"testing"

	"github.com/bryan-cox/reportledger/internal/content"
)

func TestRenderBlocksHTML(t *testing.T) {
	blocks := content.Classify("# A & B\n- um\n- dois\n1. x\n**<b>**\n\nfim")

	want := strings.Join([]string{
		"<h1>A &amp; B</h1>",
		"<ul>",
		"<li>um</li>",
		"<li>dois</li>",
		"</ul>",
		"<ol>",
		"<li>x</li>",
		"</ol>",
		"<p><strong>&lt;b&gt;</strong></p>",
		"<br>",
		"<p>fim</p>",
		"",
	}, "\n")

	if got := RenderBlocksHTML(blocks); got != want {
		t.Errorf("RenderBlocksHTML:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBlocksHTMLClosesTrailingList(t *testing.T) {
	got := RenderBlocksHTML(content.Classify("- a\n- b"))
	if !strings.HasSuffix(got, "</ul>\n") {
		t.Errorf("trailing list not closed:\n%s", got)
	}
}

func TestRenderHTML(t *testing.T) {
	r := sampleReports()[0]
	r.Content = "## Principais Métricas"

	got := RenderHTML(r)
	for _, want := range []string{
		"<h1>Relatório Mensal de Vendas</h1>",
		"<strong>Aprovado</strong>",
		"Categoria: Vendas",
		"Por João Silva",
		"15/07/2023",
		"<h2>Principais Métricas</h2>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderHTML missing %q:\n%s", want, got)
		}
	}
}
