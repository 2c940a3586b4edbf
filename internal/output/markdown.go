package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const markdownMaxWidth = 80

// RenderMarkdown renders a markdown document for the terminal, wrapped to
// the detected width. Catalog entries (pests, tips) go through here.
func RenderMarkdown(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth()),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}

// renderWidth picks a wrap width from the terminal, capped so prose stays
// readable on wide screens.
func renderWidth() int {
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	} else if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil {
		width = cols
	}
	if width <= 0 || width > markdownMaxWidth {
		width = markdownMaxWidth
	}
	return width
}
