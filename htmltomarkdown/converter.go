// Package htmltomarkdown renders tabgenie HTML tables as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/tabgenie"
)

// Ensure Converter implements tabgenie.Converter at compile time.
var _ tabgenie.Converter = (*Converter)(nil)

// Converter turns rendered table HTML into GitHub-flavoured Markdown tables.
//
// Markdown has no spans, so every position covered by a colspan or rowspan
// repeats the anchor's content, matching the frame export. Tables without
// header cells use their first row as the header, and multi-line cell
// values are joined with <br />.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithSpanCellBehavior(table.SpanBehaviorMirror),
				table.WithNewlineBehavior(table.NewlineBehaviorPreserve),
				table.WithHeaderPromotion(true),
				table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
			),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into Markdown terminated by a single newline.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", tabgenie.Errorf(tabgenie.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", tabgenie.Errorf(tabgenie.EINTERNAL, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(result) + "\n", nil
}
