package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/calgrid/calgrid/internal/config"
	"github.com/calgrid/calgrid/pkg/calmath"
	"github.com/calgrid/calgrid/pkg/grid"
	"github.com/calgrid/calgrid/pkg/pipeline"
)

// newBrowseCmd opens the interactive month browser.
func newBrowseCmd(configPath *string) *cobra.Command {
	flags := &gridFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse months interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			opts, err := flags.options(cfg, pipeline.ModeMonth, logger)
			if err != nil {
				return err
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			model := newBrowseModel(opts.Anchor, opts.Now, opts.Calendar())
			_, err = tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.anchor, "anchor", "a", "", "starting month YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&flags.timezone, "tz", "", "IANA timezone (default from config)")
	cmd.Flags().StringVar(&flags.weekStart, "week-start", "", "first weekday of the week (default from config)")
	return cmd
}

// browseModel is the bubbletea model for month navigation. It holds only
// the anchor and re-derives the grid on every render.
type browseModel struct {
	anchor time.Time
	now    time.Time
	cal    calmath.Calendar
	err    error
}

func newBrowseModel(anchor, now time.Time, cal calmath.Calendar) browseModel {
	return browseModel{anchor: anchor, now: now, cal: cal}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.anchor = m.anchor.AddDate(0, -1, 0)
		case "right", "l":
			m.anchor = m.anchor.AddDate(0, 1, 0)
		case "t":
			m.anchor = m.now
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	cells, err := grid.MonthGrid(m.anchor, m.now, m.cal)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	body := renderGridText(cells, m.anchor, m.cal)
	help := styleDim.Render("←/→ month · t today · q quit")
	return body + "\n" + help + "\n"
}
