package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Test Setup ---

func setupTests(t *testing.T) string {
	t.Helper()
	content := []byte(`
reports:
  - id: 1
    title: "Relatório Mensal de Vendas"
    description: "Análise detalhada das vendas do mês de junho"
    status: "Aprovado"
    author: "João Silva"
    date: "2023-07-15"
    category: "Vendas"
    content: |
      # Resumo Executivo

      ## Principais Métricas

      - **Receita Total**: R$ 2.450.000
      - Expandir atuação nas regiões Norte e Nordeste

      **Região Sudeste**
      1. **Crescimento Sustentável**
      2. **Diversificação Regional**
  - id: 2
    title: "Análise de Performance Q2"
    description: "Revisão do desempenho do segundo trimestre"
    status: "Pendente"
    author: "Maria Santos"
    date: "2023-07-14"
    category: "Gestão"
    content: "Texto."
  - id: 3
    title: "Relatório de Satisfação do Cliente"
    description: "Pesquisa de satisfação com análise de feedback"
    status: "Em Revisão"
    author: "Pedro Oliveira"
    date: "2023-07-13"
    category: "Customer Service"
    content: "Texto."
`)
	path := filepath.Join(t.TempDir(), "reports.yml")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	// Reset slog to default for other tests
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil))) })
	return path
}

// executeCommand runs a fresh root command and returns stdout and the error.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)

	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// executeCommandText fails the test if the command fails.
func executeCommandText(t *testing.T, args ...string) string {
	t.Helper()
	output, err := executeCommand(t, "", args...)
	if err != nil {
		t.Fatalf("command execution failed: %v", err)
	}
	return output
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

// --- Test Functions ---

func TestListCommand(t *testing.T) {
	file := setupTests(t)

	t.Run("lists every report", func(t *testing.T) {
		output := executeCommandText(t, "list", "--file", file)
		assertContains(t, output, "Relatórios (3)", "#1 [Aprovado]", "#2 [Pendente]", "#3 [Em Revisão]")
	})

	t.Run("search is case-insensitive and keeps order", func(t *testing.T) {
		output := executeCommandText(t, "list", "--file", file, "--search", "RELATÓRIO")
		assertContains(t, output, "Relatórios (2)")
		first := strings.Index(output, "#1 ")
		third := strings.Index(output, "#3 ")
		if first < 0 || third < 0 || first > third {
			t.Errorf("expected reports 1 then 3:\n%s", output)
		}
		if strings.Contains(output, "#2 ") {
			t.Errorf("report 2 should be filtered out:\n%s", output)
		}
	})

	t.Run("status alias", func(t *testing.T) {
		output := executeCommandText(t, "list", "--file", file, "--status", "pending")
		assertContains(t, output, "Relatórios (1)", "#2 [Pendente]")
	})

	t.Run("empty result", func(t *testing.T) {
		output := executeCommandText(t, "list", "--file", file, "--search", "inexistente")
		assertContains(t, output, "Nenhum relatório encontrado.")
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := executeCommand(t, "", "list", "--file", file, "--status", "rascunho"); err == nil {
			t.Error("expected an error for an unknown status")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand(t, "", "list", "--file", filepath.Join(t.TempDir(), "absent.yml"))
		if err == nil || !strings.Contains(err.Error(), "absent.yml") {
			t.Errorf("expected error naming the file, got %v", err)
		}
	})
}

func TestViewCommand(t *testing.T) {
	file := setupTests(t)

	t.Run("renders blocks", func(t *testing.T) {
		output := executeCommandText(t, "view", "1", "--file", file)
		assertContains(t, output,
			"Relatório Mensal de Vendas\n",
			"[Aprovado]  Categoria: Vendas  Por João Silva  15/07/2023",
			"Resumo Executivo\n",
			"Principais Métricas\n",
			"  • **Receita Total**: R$ 2.450.000\n",
			"  • Expandir atuação nas regiões Norte e Nordeste\n",
			"Região Sudeste\n",
			"  1. **Crescimento Sustentável**\n",
			"  2. **Diversificação Regional**\n",
		)
		if strings.Contains(output, "## ") {
			t.Errorf("heading markers should be stripped:\n%s", output)
		}
	})

	t.Run("html", func(t *testing.T) {
		output := executeCommandText(t, "view", "1", "--file", file, "--html")
		assertContains(t, output, "<h1>Resumo Executivo</h1>", "<h2>Principais Métricas</h2>", "<ul>\n<li>", "<ol>\n<li>")
	})

	t.Run("copy", func(t *testing.T) {
		var copied string
		orig := copyHTML
		copyHTML = func(html string) error { copied = html; return nil }
		defer func() { copyHTML = orig }()

		output := executeCommandText(t, "view", "1", "--file", file, "--copy")
		assertContains(t, output, msgCopied)
		assertContains(t, copied, "<h1>Relatório Mensal de Vendas</h1>")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := executeCommand(t, "", "view", "99", "--file", file)
		if err == nil || !strings.Contains(err.Error(), "report 99") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		if _, err := executeCommand(t, "", "view", "abc", "--file", file); err == nil {
			t.Error("expected an error for a non-numeric id")
		}
	})
}

func TestDashboardCommand(t *testing.T) {
	file := setupTests(t)

	output := executeCommandText(t, "dashboard", "--file", file, "--recent", "2")
	assertContains(t, output,
		"Total de Relatórios: 3",
		"Relatórios Pendentes: 1",
		"Relatórios Aprovados: 1",
		"#1 [Aprovado] Relatório Mensal de Vendas · João Silva · 15/07/2023",
		"#2 [Pendente]",
	)
	if strings.Contains(output, "#3 ") {
		t.Errorf("dashboard should show two recent reports:\n%s", output)
	}
}

func TestNewCommand(t *testing.T) {
	file := setupTests(t)

	t.Run("creates from stdin content", func(t *testing.T) {
		output, err := executeCommand(t, "# Orçamento\n- item",
			"new", "--file", file,
			"--title", "Orçamento 2024",
			"--description", "Planejamento anual",
			"--category", "Financeiro",
			"--author", "Ana Lima",
			"--date", "2024-01-10",
			"--content-file", "-",
		)
		if err != nil {
			t.Fatalf("command execution failed: %v", err)
		}
		assertContains(t, output,
			"Orçamento 2024\n",
			"[Pendente]  Categoria: Financeiro  Por Ana Lima  10/01/2024",
			"  • item\n",
			msgCreated,
		)
	})

	t.Run("rejects invalid form", func(t *testing.T) {
		_, err := executeCommand(t, "", "new", "--file", file, "--title", "Sem categoria")
		if err == nil {
			t.Fatal("expected a validation error")
		}
		for _, field := range []string{"description", "category", "content"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("error %q does not name %s", err, field)
			}
		}
	})
}

func TestEditCommand(t *testing.T) {
	file := setupTests(t)

	t.Run("keeps unset fields", func(t *testing.T) {
		output := executeCommandText(t, "edit", "2", "--file", file, "--status", "approved", "--category", "RH")
		assertContains(t, output,
			"Análise de Performance Q2\n",
			"[Aprovado]  Categoria: Recursos Humanos  Por Maria Santos  14/07/2023",
			msgUpdated,
		)
	})

	t.Run("rejects cleared title", func(t *testing.T) {
		_, err := executeCommand(t, "", "edit", "2", "--file", file, "--title", "")
		if err == nil || !strings.Contains(err.Error(), "title") {
			t.Errorf("expected title validation error, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := executeCommand(t, "", "edit", "42", "--file", file, "--title", "x"); err == nil {
			t.Error("expected not found error")
		}
	})
}

func TestDeleteCommand(t *testing.T) {
	file := setupTests(t)

	output := executeCommandText(t, "delete", "2", "--file", file)
	assertContains(t, output, msgDeleted, "Relatórios (2)", "#1 ", "#3 ")
	if strings.Contains(output, "#2 ") {
		t.Errorf("deleted report still listed:\n%s", output)
	}

	// The data file is never written.
	output = executeCommandText(t, "list", "--file", file)
	assertContains(t, output, "Relatórios (3)")
}
