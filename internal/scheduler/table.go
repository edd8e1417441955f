package scheduler

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jujuqa/compatctl/internal/models"
)

func renderMatrix(w io.Writer, records []models.JobRecord) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Old Version", "Candidate", "Direction", "Client OS", "Candidate Dir"})
	for _, r := range records {
		direction := "new client / old server"
		if r.NewToOld {
			direction = "old client / new server"
		}
		tw.AppendRow(table.Row{r.OldVersion, r.Candidate, direction, string(r.ClientOS), r.CandidatePath})
	}

	tw.Render()
}
