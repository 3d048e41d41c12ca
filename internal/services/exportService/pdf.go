package exportservice

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/redjax/csvdash/internal/utils/convert"
)

const (
	margin      = 40.0
	titleSize   = 18.0
	bodySize    = 10.0
	rowHeight   = 16.0
	cellPadding = 4.0
	tableTop    = 60.0
)

// compress is switched off in tests so page text can be inspected.
var compress = true

var (
	headerFill = [3]int{22, 160, 133}
	stripeFill = [3]int{242, 242, 242}
)

// FileName is the download name used for a table's export.
func FileName(table string) string {
	return fmt.Sprintf("%s_results.pdf", table)
}

// Columns picks the PDF columns: the keys of the first row, in the table's
// header order when known. Keys missing from order are appended sorted.
func Columns(order []string, rows []loaderservice.Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	first := rows[0]

	cols := make([]string, 0, len(first))
	seen := make(map[string]bool, len(first))
	for _, c := range order {
		if _, ok := first[c]; ok && !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	var rest []string
	for c := range first {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// ExportPDF renders rows as a striped table titled "Results for table: {table}".
// An empty result set renders "No data available." instead of a table.
func ExportPDF(w io.Writer, table string, columns []string, rows []loaderservice.Row) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := tr(fmt.Sprintf("Results for table: %s", table))

	pdf.SetCompression(compress)
	pdf.SetTitle(title, false)
	pdf.SetCreator("csvdash", false)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.Text(margin, margin, title)

	pdf.SetFont("Helvetica", "", 12)
	if len(rows) == 0 {
		pdf.Text(margin, tableTop, "No data available.")
		return output(pdf, w)
	}

	cols := Columns(columns, rows)
	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*margin) / float64(len(cols))

	drawHeader := func(y float64) {
		pdf.SetXY(margin, y)
		pdf.SetFont("Helvetica", "B", bodySize)
		pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
		pdf.SetTextColor(255, 255, 255)
		for _, c := range cols {
			pdf.CellFormat(colW, rowHeight, fit(pdf, tr(c), colW), "", 0, "L", true, 0, "")
		}
		pdf.Ln(rowHeight)
		pdf.SetFont("Helvetica", "", bodySize)
		pdf.SetTextColor(0, 0, 0)
	}

	drawHeader(tableTop)
	for i, row := range rows {
		if pdf.GetY()+rowHeight > pageH-margin {
			pdf.AddPage()
			drawHeader(margin)
		}
		striped := i%2 == 1
		if striped {
			pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		}
		pdf.SetX(margin)
		for _, c := range cols {
			pdf.CellFormat(colW, rowHeight, fit(pdf, tr(row[c]), colW), "", 0, "L", striped, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	return output(pdf, w)
}

// WritePDFFile exports to dir/{table}_results.pdf and returns the path.
func WritePDFFile(dir, table string, columns []string, rows []loaderservice.Row) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	target := filepath.Join(dir, FileName(table))

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	cw := &countingWriter{w: f}
	if err := ExportPDF(cw, table, columns, rows); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	log.Info().
		Str("export_id", uuid.NewString()).
		Str("table", table).
		Int("rows", len(rows)).
		Str("path", target).
		Str("size", convert.HumanBytes(cw.n)).
		Msg("Exported PDF")
	return target, nil
}

// countingWriter records how many bytes went through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// fit truncates s with an ellipsis so it stays inside a cell of width w.
// s is already translated to the single-byte core font encoding.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2*cellPadding
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	b := s
	for len(b) > 0 && pdf.GetStringWidth(b+"...") > limit {
		b = b[:len(b)-1]
	}
	return b + "..."
}
