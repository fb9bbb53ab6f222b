package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hiraku/calq/internal/log"
	"github.com/hiraku/calq/internal/session"
	"github.com/hiraku/calq/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the calculator as a full-screen terminal UI",
	Long: `Tui runs the same calculation loop as the default command inside a
full-screen terminal UI with a transcript of previous calculations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		styles := session.DefaultStyles()
		if cfg.NoColor {
			styles = session.PlainStyles()
		}

		p := tea.NewProgram(ui.NewModel(styles), tea.WithAltScreen())

		// Stderr writes would tear the alt-screen frame; route records
		// into the model instead.
		log.SetCallback(func(record slog.Record) {
			p.Send(ui.LogMsg{
				Level:   record.Level.String(),
				Message: record.Message,
			})
		})

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
