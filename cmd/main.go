package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bryan-cox/reportledger/internal/clipboard"
	"github.com/bryan-cox/reportledger/internal/form"
	"github.com/bryan-cox/reportledger/internal/model"
	"github.com/bryan-cox/reportledger/internal/report"
	"github.com/bryan-cox/reportledger/internal/store"
)

// envFile overrides the default data file path.
const envFile = "REPORTLEDGER_FILE"

// Confirmation messages printed after the form flows.
const (
	msgCreated = "Relatório criado com sucesso!"
	msgUpdated = "Relatório atualizado com sucesso!"
	msgDeleted = "Relatório excluído com sucesso!"
	msgCopied  = "Relatório copiado para a área de transferência."
)

// options holds the flag values shared by all commands.
type options struct {
	filePath string
	logLevel string
}

// formOptions holds the report form flags of the new and edit commands.
type formOptions struct {
	title       string
	description string
	category    string
	status      string
	author      string
	date        string
	contentFile string
}

// copyHTML is replaced in tests.
var copyHTML = clipboard.CopyHTML

// --- Cobra Command Definitions ---

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "reportledger",
		Short:         "A CLI tool to browse, render and edit business reports from a YAML file.",
		Long:          `ReportLedger loads reports from a YAML data file, lists and filters them, renders their markdown content and runs the create, edit and delete flows in memory. The data file is never written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd.ErrOrStderr(), opts.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.filePath, "file", defaultFilePath(), "Path to the YAML report file (env "+envFile+").")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error.")

	rootCmd.AddCommand(
		newListCmd(opts),
		newViewCmd(opts),
		newDashboardCmd(opts),
		newNewCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
	)
	return rootCmd
}

func newListCmd(opts *options) *cobra.Command {
	var criteria report.Criteria
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, optionally filtered.",
		Long:  `Lists the reports whose title or description contains the search term (case-insensitive) and whose status matches the status filter.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := model.ParseStatus(status)
			if err != nil {
				slog.Error("invalid status filter", "error", err, "status", status)
				return err
			}
			criteria.Status = parsed

			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}
			reports, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			filtered := report.Filter(reports, criteria)
			slog.Debug("filtered reports", "search", criteria.Search, "status", criteria.Status, "total", len(reports), "matched", len(filtered))
			report.NewPrinter(cmd.OutOrStdout()).PrintList(filtered)
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Search, "search", "", "Case-insensitive text to find in title or description.")
	cmd.Flags().StringVar(&status, "status", "", "Only show reports with this status (Pendente, Em Revisão, Aprovado).")
	return cmd
}

func newViewCmd(opts *options) *cobra.Command {
	var asHTML, toClipboard bool

	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "Show a report with its rendered content.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}
			r, err := getReport(cmd.Context(), repo, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case toClipboard:
				if err := copyHTML(report.RenderHTML(r)); err != nil {
					slog.Error("failed to copy report to clipboard", "error", err, "id", id)
					return err
				}
				fmt.Fprintln(out, msgCopied)
			case asHTML:
				fmt.Fprint(out, report.RenderHTML(r))
			default:
				report.NewPrinter(out).PrintReport(r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the report as HTML.")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the HTML report to the clipboard.")
	return cmd
}

func newDashboardCmd(opts *options) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show report totals and the most recent reports.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}
			reports, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			report.NewPrinter(cmd.OutOrStdout()).PrintDashboard(report.Summarize(reports, recent))
			return nil
		},
	}
	cmd.Flags().IntVar(&recent, "recent", report.DefaultRecent, "Number of recent reports to show.")
	return cmd
}

func newNewCmd(opts *options) *cobra.Command {
	fo := &formOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Validate and create a report.",
		Long:  `Builds a report from the form flags, validates it and adds it to the in-memory repository loaded from the data file. The created report is printed; the data file is not modified.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}

			f := form.New()
			f.Date = model.Date{Time: today()}
			if err := fo.applyTo(cmd, &f); err != nil {
				return err
			}
			if err := form.NewValidator().Validate(f); err != nil {
				slog.Error("report form rejected", "error", err)
				return err
			}

			created, err := repo.Create(cmd.Context(), f.Apply(model.Report{}))
			if err != nil {
				return err
			}
			slog.Info("report created", "id", created.ID)

			out := cmd.OutOrStdout()
			report.NewPrinter(out).PrintReport(created)
			fmt.Fprintf(out, "\n%s\n", msgCreated)
			return nil
		},
	}
	fo.register(cmd)
	return cmd
}

func newEditCmd(opts *options) *cobra.Command {
	fo := &formOptions{}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Validate and replace an existing report.",
		Long:  `Prefills the form with the stored report, applies the given flags and replaces the report in the in-memory repository. The data file is not modified.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}
			existing, err := getReport(cmd.Context(), repo, id)
			if err != nil {
				return err
			}

			f := form.FromReport(existing)
			if err := fo.applyTo(cmd, &f); err != nil {
				return err
			}
			if err := form.NewValidator().Validate(f); err != nil {
				slog.Error("report form rejected", "error", err, "id", id)
				return err
			}

			updated, err := repo.Update(cmd.Context(), f.Apply(existing))
			if err != nil {
				return err
			}
			slog.Info("report updated", "id", updated.ID)

			out := cmd.OutOrStdout()
			report.NewPrinter(out).PrintReport(updated)
			fmt.Fprintf(out, "\n%s\n", msgUpdated)
			return nil
		},
	}
	fo.register(cmd)
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a report and show the remaining list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := loadRepository(opts.filePath)
			if err != nil {
				return err
			}
			if err := repo.Delete(cmd.Context(), id); err != nil {
				slog.Error("failed to delete report", "error", err, "id", id)
				return err
			}
			remaining, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", msgDeleted)
			report.NewPrinter(out).PrintList(remaining)
			return nil
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// --- Main Application Entry Point ---

func main() {
	// Setup structured JSON logger for errors until flags are parsed.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	Execute()
}

// --- Helper Functions ---

func setupLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func defaultFilePath() string {
	if p := os.Getenv(envFile); p != "" {
		return p
	}
	return "reports.yml"
}

func loadRepository(filePath string) (*store.Memory, error) {
	repo, err := store.LoadFile(filePath)
	if err != nil {
		slog.Error("failed to load report file", "error", err, "path", filePath)
		return nil, err
	}
	return repo, nil
}

func getReport(ctx context.Context, repo store.Repository, id int) (model.Report, error) {
	r, err := repo.Get(ctx, id)
	if err != nil {
		slog.Error("failed to find report", "error", err, "id", id)
		return model.Report{}, err
	}
	return r, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid report id %q", arg)
	}
	return id, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (fo *formOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fo.title, "title", "", "Report title.")
	cmd.Flags().StringVar(&fo.description, "description", "", "Short description.")
	cmd.Flags().StringVar(&fo.category, "category", "", "Category: "+strings.Join(model.Categories, ", ")+".")
	cmd.Flags().StringVar(&fo.status, "status", "", "Status (default Pendente for new reports).")
	cmd.Flags().StringVar(&fo.author, "author", "", "Author name.")
	cmd.Flags().StringVar(&fo.date, "date", "", "Report date (YYYY-MM-DD, default today for new reports).")
	cmd.Flags().StringVar(&fo.contentFile, "content-file", "", "File holding the markdown content, or - for stdin.")
}

// applyTo copies every flag the user set onto f. Unset flags keep the
// prefilled value.
func (fo *formOptions) applyTo(cmd *cobra.Command, f *form.Form) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		f.Title = fo.title
	}
	if flags.Changed("description") {
		f.Description = fo.description
	}
	if flags.Changed("category") {
		f.Category = fo.category
	}
	if flags.Changed("author") {
		f.Author = fo.author
	}
	if flags.Changed("status") {
		s, err := model.ParseStatus(fo.status)
		if err != nil {
			return err
		}
		f.Status = s
	}
	if flags.Changed("date") {
		d, err := model.ParseDate(fo.date)
		if err != nil {
			return err
		}
		f.Date = d
	}
	if flags.Changed("content-file") {
		text, err := readContent(cmd.InOrStdin(), fo.contentFile)
		if err != nil {
			return err
		}
		f.Content = text
	}
	return nil
}

func readContent(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("could not read content from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read content file '%s': %w", path, err)
	}
	return string(data), nil
}
