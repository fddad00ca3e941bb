package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dmitrijs2005/weighttrack/internal/models"
)

// renderWeights prints entries as a table to w.
func renderWeights(w io.Writer, entries []models.WeightEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"ID", "Date", "Weight", "Notes"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.ID, e.Date, fmt.Sprintf("%.1f", e.Weight), e.Notes})
	}

	t.Render()
}
