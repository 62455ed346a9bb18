package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	llmparse "github.com/driftcode/llmparse"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	SchemaFile string
}

func NewWatchCmd() *cobra.Command {
	var opts WatchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream stdin line-by-line, showing each validated JSON value as it completes",
		Long: `Read stdin continuously, feeding it through a batch stream collector, and
render each newly completed value live as it parses and validates against
--schema. Press q or ctrl+c to stop.

Examples:
  tail -f events.ndjson | llmparse watch --schema event.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts)
		},
	}

	cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "Path to a JSON Schema document (required)")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func runWatch(opts WatchOptions) error {
	schemaText, err := os.ReadFile(opts.SchemaFile)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	schemaValue, err := llmparse.ParseValue(string(schemaText))
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	collector := llmparse.NewJSONStreamBatchCollector(schemaValue, defaultRepairConfig(), llmparse.StreamLimits{})
	m := newWatchModel(collector)
	p := tea.NewProgram(m)

	go pumpStdin(p, collector)

	_, err = p.Run()
	return err
}

type watchItem struct {
	text string
	ok   bool
}

type watchModel struct {
	collector *llmparse.JSONStreamBatchCollector
	spinner   spinner.Model
	items     []watchItem
	errCount  int
	quitting  bool
}

func newWatchModel(c *llmparse.JSONStreamBatchCollector) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	return watchModel{collector: c, spinner: sp}
}

type watchBatchMsg struct {
	outcome llmparse.StreamOutcome[[]llmparse.Value]
}

func (m watchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case watchBatchMsg:
		if msg.outcome.Error != nil {
			m.errCount++
			m.items = append(m.items, watchItem{text: msg.outcome.Error.Error(), ok: false})
		} else if msg.outcome.Value != nil {
			for _, v := range *msg.outcome.Value {
				m.items = append(m.items, watchItem{text: llmparse.Serialize(v), ok: true})
			}
		}
		if msg.outcome.Done {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	out := ""
	if !m.quitting {
		out += m.spinner.View() + " watching stdin (q to quit)\n\n"
	}
	for _, item := range m.items {
		if item.ok {
			out += styleOK.Render("✓ ") + item.text + "\n"
		} else {
			out += styleError.Render("✗ ") + item.text + "\n"
		}
	}
	return out
}

// pumpStdin reads stdin line by line, feeds each line to the collector,
// and sends every resulting batch to the bubbletea program as a message.
func pumpStdin(p *tea.Program, c *llmparse.JSONStreamBatchCollector) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		c.Append(scanner.Bytes())
		c.Append([]byte("\n"))
		p.Send(watchBatchMsg{outcome: c.Poll()})
	}
	p.Send(watchBatchMsg{outcome: c.Close()})
}
