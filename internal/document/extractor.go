package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/legalens/legalens/internal/model"
	"golang.org/x/net/html"
)

// HTML elements whose contents are never visible text
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"head":     true,
}

// HTML elements that end a block of text. Emitting a newline after each
// keeps paragraph boundaries intact for clause segmentation.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "table": true, "blockquote": true, "pre": true,
}

// Extractor turns contract files into plain text. Plain-text, Markdown
// and HTML inputs are supported; binary formats are rejected with an
// actionable error rather than decoded badly.
type Extractor struct{}

// NewExtractor creates a document extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Process reads and extracts text from the file at path. Failures are
// reported in the result, not as an error: a failed extraction is a
// normal outcome the caller renders to the user.
func (e *Extractor) Process(path string) model.ExtractionResult {
	info, err := os.Stat(path)
	if err != nil {
		return failure(path, "file not found")
	}
	if info.IsDir() {
		return failure(path, "path is a directory, not a file")
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		return e.processText(path, ext)
	case ".html", ".htm":
		return e.processHTML(path)
	case ".pdf", ".docx", ".doc":
		return failure(path, fmt.Sprintf(
			"%s files are not supported; convert the contract to .txt, .md or .html first", ext))
	default:
		return failure(path, fmt.Sprintf("unsupported format: %s", ext))
	}
}

func (e *Extractor) processText(path, ext string) model.ExtractionResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return failure(path, fmt.Sprintf("read failed: %v", err))
	}

	text := Clean(string(raw))
	fileType := "TXT"
	if ext == ".md" {
		fileType = "MARKDOWN"
	}

	return model.ExtractionResult{
		Success:  true,
		Text:     text,
		FileName: filepath.Base(path),
		FileType: fileType,
		Metadata: map[string]string{
			"lines": fmt.Sprintf("%d", strings.Count(text, "\n")+1),
			"bytes": fmt.Sprintf("%d", len(raw)),
		},
	}
}

func (e *Extractor) processHTML(path string) model.ExtractionResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return failure(path, fmt.Sprintf("read failed: %v", err))
	}

	doc, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return failure(path, fmt.Sprintf("HTML parse failed: %v", err))
	}

	text := Clean(visibleText(doc))

	return model.ExtractionResult{
		Success:  true,
		Text:     text,
		FileName: filepath.Base(path),
		FileType: "HTML",
		Metadata: map[string]string{
			"bytes": fmt.Sprintf("%d", len(raw)),
		},
	}
}

// visibleText walks the parse tree collecting text nodes, skipping
// non-content elements and inserting newlines at block boundaries
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipElements[n.Data] {
				return
			}
			if n.Data == "br" {
				buf.WriteString("\n")
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n\n")
		}
	}

	walk(n)
	return buf.String()
}

var (
	spacesRe   = regexp.MustCompile(`[ \t]+`)
	newlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes extracted text: line endings become \n, NUL bytes are
// dropped, runs of spaces collapse, and runs of blank lines collapse to
// one. Single newlines survive so segmentation still sees structure.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	text = spacesRe.ReplaceAllString(text, " ")

	// Trim trailing spaces left at line ends by the collapse above
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text = strings.Join(lines, "\n")

	text = newlinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

func failure(path, msg string) model.ExtractionResult {
	return model.ExtractionResult{
		Success:  false,
		Error:    msg,
		Metadata: map[string]string{},
		FileName: filepath.Base(path),
	}
}
