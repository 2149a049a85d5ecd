package output

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Arial"
	fontSize = 11
)

// writeDocx renders the description as a docx: bold title, then one paragraph
// per line of the description, blank lines preserved as empty paragraphs so
// the hashtag block, hook, timestamps and footer keep their spacing.
func writeDocx(title, description, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(14).Color("000000").Bold(true)

	for _, line := range strings.Split(description, "\n") {
		p := doc.AddParagraph("")
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" {
			continue
		}
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
