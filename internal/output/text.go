package output

import (
	"fmt"
	"io"

	"github.com/Meghali54/Aquilia-AI-sub000/internal/models"
	"github.com/Meghali54/Aquilia-AI-sub000/internal/service"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	tierStyles = map[string]lipgloss.Style{
		service.TierExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		service.TierGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		service.TierModerate:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		service.TierLow:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

func writeText(w io.Writer, results []QueryResult) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render(res.Header), dimStyle.Render(fmt.Sprintf("(%d nt)", res.Length)))

		if res.Error != "" {
			fmt.Fprintf(w, "  %s\n", errorStyle.Render("error: "+res.Error))
			continue
		}
		if len(res.Matches) == 0 {
			fmt.Fprintf(w, "  %s\n", dimStyle.Render("no matches"))
			continue
		}
		for rank, m := range res.Matches {
			fmt.Fprintf(w, "  %d. %s %s  %s\n",
				rank+1,
				formatSimilarity(m),
				m.CommonName,
				dimStyle.Render(fmt.Sprintf("%s, %s", m.ReferenceID, m.Family)))
		}
	}
	return nil
}

func formatSimilarity(m models.MatchResult) string {
	text := fmt.Sprintf("%5.1f%%", m.Similarity)
	if style, ok := tierStyles[m.Tier]; ok {
		return style.Render(text)
	}
	return text
}

// WriteReferences lists a catalogue, one entry per line
func WriteReferences(w io.Writer, refs []models.ReferenceSequence) {
	for _, ref := range refs {
		fmt.Fprintf(w, "%s  %s  %s\n",
			headerStyle.Render(ref.ID),
			ref.CommonName,
			dimStyle.Render(fmt.Sprintf("%s, %d nt", ref.Family, len(ref.Sequence))))
	}
}
