package cli

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brickforge/brickforge/pkg/convert"
	"github.com/brickforge/brickforge/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listOnStyle       = lipgloss.NewStyle().Foreground(colorGreen)
)

// pickModel is the bubbletea model for interactive schematic selection.
// Besides picking a file it carries the two conversion toggles, so the
// whole run can be configured without remembering flags.
type pickModel struct {
	Files    []string
	Cursor   int
	Height   int
	Offset   int
	Optimize bool
	Double   bool
	Choice   string // selected file; empty means quit without converting
}

func newPickModel(files []string, optimize, double bool) pickModel {
	return pickModel{
		Files:    files,
		Height:   15,
		Optimize: optimize,
		Double:   double,
	}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "o":
			m.Optimize = !m.Optimize
		case "d":
			m.Double = !m.Double
		case "enter":
			if len(m.Files) > 0 {
				m.Choice = m.Files[m.Cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Schematic"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ convert  o optimize  d double scale  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Files) {
		end = len(m.Files)
	}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(filepath.Base(m.Files[i])) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("optimize: ") + toggleLabel(m.Optimize))
	b.WriteString(listDimStyle.Render("   scale: "))
	if m.Double {
		b.WriteString(listOnStyle.Render("double"))
	} else {
		b.WriteString(listNormalStyle.Render("standard"))
	}
	b.WriteString("\n")
	return b.String()
}

func toggleLabel(on bool) string {
	if on {
		return listOnStyle.Render("on")
	}
	return listNormalStyle.Render("off")
}

// pickCommand creates the pick command: an interactive picker over the
// schematics in a directory that runs convert on the selection.
func (c *CLI) pickCommand() *cobra.Command {
	opts := c.newConvertOpts()

	cmd := &cobra.Command{
		Use:   "pick [directory]",
		Short: "Interactively pick a schematic and convert it",
		Long: `List the schematic files in a directory, pick one interactively, toggle
the conversion options, and run the conversion.

Examples:
  brickforge pick              # schematics in the current directory
  brickforge pick ~/worlds     # schematics in a specific directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runPick(withLogger(cmd.Context(), c.Logger), dir, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (input name with .ldr if empty)")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "palette override file (YAML)")

	return cmd
}

func (c *CLI) runPick(ctx context.Context, dir string, opts *convertOpts) error {
	files, err := findSchematics(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New(errors.ErrCodeFileNotFound, "no schematic files in %s", dir)
	}

	model := newPickModel(files,
		opts.optimize,
		convert.ScaleMode(opts.scale) == convert.ScaleDouble)

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "interactive picker")
	}
	picked, ok := final.(pickModel)
	if !ok || picked.Choice == "" {
		printInfo("Nothing selected")
		return nil
	}

	opts.optimize = picked.Optimize
	opts.scale = string(convert.ScaleStandard)
	if picked.Double {
		opts.scale = string(convert.ScaleDouble)
	}
	return c.runConvert(ctx, picked.Choice, opts)
}

// findSchematics lists the schematic files directly in dir, sorted by name.
func findSchematics(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read directory %s", dir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".schem", ".schematic":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
