package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"caid/internal/client"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show command usage analytics from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		stats, err := client.New(settings.APIURL).Stats(ctx)
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("no commands tracked yet")
			return nil
		}
		fmt.Println(statsTable(stats))
		return nil
	},
}

type statRow struct {
	name string
	client.StatsEntry
}

// statsTable renders stats by count desc, then name.
func statsTable(stats map[string]client.StatsEntry) string {
	rows := make([]statRow, 0, len(stats))
	for k, v := range stats {
		rows = append(rows, statRow{name: k, StatsEntry: v})
	}
	slices.SortFunc(rows, func(a, b statRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMMAND", "COUNT", "LAST USED")
	for _, r := range rows {
		last := "-"
		if !r.LastUsed.IsZero() {
			last = r.LastUsed.Local().Format(time.DateTime)
		}
		t.Row(r.name, strconv.Itoa(r.Count), last)
	}
	return t.String()
}
