// Package clipboard copies rendered reports to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoTool is returned when no clipboard tool for the platform is installed.
var ErrNoTool = errors.New("no suitable clipboard tool found")

// tool is a clipboard command that reads the content on stdin.
type tool struct {
	name string
	args []string
}

// htmlTools and textTools are tried in order, per GOOS. HTML-capable tools
// come first; plain text tools are the fallback.
var (
	htmlTools = map[string][]tool{
		"linux": {
			{"wl-copy", []string{"--type", "text/html"}},
			{"xclip", []string{"-selection", "clipboard", "-t", "text/html"}},
			{"xsel", []string{"--clipboard", "--input", "--type", "text/html"}},
		},
	}
	textTools = map[string][]tool{
		"linux": {
			{"wl-copy", nil},
			{"xclip", []string{"-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		},
		"darwin": {
			{"pbcopy", nil},
		},
	}
)

// lookPath and run are replaced in tests.
var (
	lookPath = exec.LookPath
	run      = func(t tool, input string) error {
		cmd := exec.Command(t.name, t.args...)
		cmd.Stdin = strings.NewReader(input)
		return cmd.Run()
	}
)

// CopyHTML copies an HTML fragment to the clipboard, falling back to plain
// text when no HTML-aware tool is available.
func CopyHTML(htmlContent string) error {
	switch runtime.GOOS {
	case "darwin":
		if err := copyHTMLMacOS(htmlContent); err == nil {
			return nil
		}
	case "windows":
		return copyHTMLWindows(htmlContent)
	}
	return copyWith(runtime.GOOS, htmlContent)
}

// copyWith tries the HTML tools for goos, then the text tools.
func copyWith(goos, content string) error {
	var tried []string
	for _, set := range [][]tool{htmlTools[goos], textTools[goos]} {
		for _, t := range set {
			if _, err := lookPath(t.name); err != nil {
				continue
			}
			tried = append(tried, t.name)
			if err := run(t, content); err == nil {
				return nil
			}
		}
	}
	if len(tried) == 0 {
		return fmt.Errorf("%w on %s", ErrNoTool, goos)
	}
	return fmt.Errorf("%w on %s (tried: %s)", ErrNoTool, goos, strings.Join(tried, ", "))
}

func copyHTMLMacOS(htmlContent string) error {
	script := fmt.Sprintf(`set the clipboard to "%s" as «class HTML»`,
		strings.ReplaceAll(htmlContent, `"`, `\"`))
	return exec.Command("osascript", "-e", script).Run()
}

func copyHTMLWindows(htmlContent string) error {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.Clipboard]::SetText(@"
%s
"@, [System.Windows.Forms.TextDataFormat]::Html)`, htmlContent)
	return exec.Command("powershell", "-Command", script).Run()
}
