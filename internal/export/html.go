package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// HTMLExporter converts a Markdown-format pack to a standalone HTML page
type HTMLExporter struct {
	markdown     goldmark.Markdown
	htmlTemplate *template.Template
}

// HTMLDocument represents the data for HTML template rendering
type HTMLDocument struct {
	Title   string
	Content template.HTML
	CSS     template.CSS
}

// NewHTMLExporter creates a new HTML exporter with Goldmark configured
func NewHTMLExporter() (*HTMLExporter, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	tmpl, err := loadHTMLTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load HTML template: %w", err)
	}

	return &HTMLExporter{
		markdown:     md,
		htmlTemplate: tmpl,
	}, nil
}

// ExportToHTML converts a Markdown-format pack to a standalone HTML file
func (e *HTMLExporter) ExportToHTML(packPath, outputPath string) error {
	packContent, err := os.ReadFile(packPath)
	if err != nil {
		return fmt.Errorf("failed to read pack: %w", err)
	}

	var buf bytes.Buffer
	if err := e.markdown.Convert(packContent, &buf); err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}

	doc := HTMLDocument{
		Title:   extractTitle(string(packContent), packPath),
		Content: template.HTML(buf.String()),
		CSS:     template.CSS(getDefaultCSS()),
	}

	var htmlBuf bytes.Buffer
	if err := e.htmlTemplate.Execute(&htmlBuf, doc); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.WriteFile(outputPath, htmlBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}

	return nil
}

// loadHTMLTemplate loads the HTML template with custom functions
func loadHTMLTemplate() (*template.Template, error) {
	const tmpl = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="promptpack">
    <title>{{.Title}}</title>
    <style>
        {{.CSS}}
    </style>
</head>
<body>
    <div class="container">
        <header>
            <div class="generator-badge">Packed with promptpack</div>
        </header>
        <main>
            {{.Content}}
        </main>
        <footer>
            <p>Generated on {{now}} by <a href="https://github.com/user/promptpack">promptpack</a></p>
        </footer>
    </div>
</body>
</html>`

	return template.New("html").Funcs(template.FuncMap{
		"now": func() string {
			return time.Now().Format("2006-01-02 15:04:05")
		},
	}).Parse(tmpl)
}

// extractTitle derives the page title from the root line of the tree
// block, falling back to the pack file name.
func extractTitle(pack, packPath string) string {
	lines := strings.Split(pack, "\n")
	for i := 0; i+2 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != treeHeader {
			continue
		}
		if !strings.HasPrefix(lines[i+1], "```") {
			continue
		}
		if root := strings.TrimSuffix(strings.TrimSpace(lines[i+2]), "/"); root != "" {
			return root
		}
	}

	base := filepath.Base(packPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "Packed Sources"
	}
	return base
}

// getDefaultCSS returns the embedded stylesheet for the HTML document
func getDefaultCSS() string {
	return `
        * {
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
            line-height: 1.6;
            color: #24292f;
            background-color: #ffffff;
            margin: 0;
            padding: 0;
        }

        .container {
            max-width: 980px;
            margin: 0 auto;
            padding: 45px;
        }

        header {
            border-bottom: 1px solid #d0d7de;
            margin-bottom: 30px;
            padding-bottom: 10px;
        }

        .generator-badge {
            font-size: 12px;
            color: #57606a;
            text-align: right;
        }

        main {
            margin-bottom: 60px;
        }

        main > p {
            font-weight: 600;
            font-family: ui-monospace, SFMono-Regular, 'SF Mono', Menlo, Consolas, monospace;
            margin-bottom: 4px;
        }

        code {
            background-color: rgba(175, 184, 193, 0.2);
            border-radius: 6px;
            font-size: 85%;
            margin: 0;
            padding: 0.2em 0.4em;
            font-family: ui-monospace, SFMono-Regular, 'SF Mono', Menlo, Consolas, monospace;
        }

        pre {
            border-radius: 6px;
            font-size: 85%;
            line-height: 1.45;
            overflow: auto;
            padding: 16px;
            margin-top: 0;
        }

        pre code {
            background-color: transparent;
            border: 0;
            display: inline;
            line-height: inherit;
            margin: 0;
            overflow: visible;
            padding: 0;
            word-wrap: normal;
        }

        a {
            color: #0969da;
            text-decoration: none;
        }

        a:hover {
            text-decoration: underline;
        }

        footer {
            border-top: 1px solid #d0d7de;
            padding-top: 20px;
            text-align: center;
            font-size: 14px;
            color: #57606a;
        }

        @media (max-width: 768px) {
            .container {
                padding: 15px;
            }
        }
    `
}
