package ops

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prequel-dev/pedid"
)

func (r *runT) render(results []resultT) error {
	if r.table {
		return r.renderTable(results)
	}

	multi := len(results) > 1

	for _, res := range results {
		if res.err != nil || res.stdout {
			continue
		}

		prefix := ""
		if multi || r.mode == modeSet {
			prefix = res.name + ": "
		}

		if r.mode == modeSet {
			if err := writeSetSummary(r.stdout, prefix, r.dims, res); err != nil {
				return err
			}
			continue
		}

		for _, line := range res.report.Lines() {
			if _, err := fmt.Fprintf(r.stdout, "%s%s\n", prefix, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeSetSummary(wr io.Writer, prefix string, dims pedid.Dimensions, res resultT) error {
	wCm, hCm := dims.Centimeters()

	_, err := fmt.Fprintf(wr, "%sset %d mm x %d mm (%d cm x %d cm) on %d descriptor(s)\n",
		prefix, dims.Width, dims.Height, wCm, hCm, len(res.report.Descriptors))

	if err == nil && res.backup != "" {
		_, err = fmt.Fprintf(wr, "%sbackup saved to %s\n", prefix, res.backup)
	}

	return err
}

func (r *runT) renderTable(results []resultT) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(r.stdout)
	t.SetTitle("Physical dimensions")
	t.AppendHeader(table.Row{"File", "Block", "Source", "Width", "Height", "Unit"})

	nRows := 0
	for i, res := range results {
		if res.err != nil || res.stdout {
			continue
		}

		if i > 0 && nRows > 0 {
			t.AppendSeparator()
		}

		rep := res.report
		t.AppendRow(table.Row{res.name, 0, "base", rep.WidthCm, rep.HeightCm, "cm"})
		for _, d := range rep.Descriptors {
			t.AppendRow(table.Row{res.name, d.Block, "descriptor", d.Width, d.Height, "mm"})
		}
		nRows++

		if res.backup != "" {
			t.AppendFooter(table.Row{res.name, "", "backup", res.backup, "", ""})
		}
	}

	if nRows == 0 {
		return nil
	}

	t.Render()
	return nil
}
