package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gutterpress/gutterpress/pkg/comic"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// volumePickerModel is the bubbletea model for interactive volume
// selection when a comic has more than one volume.
type volumePickerModel struct {
	volumes  []*comic.Volume
	cursor   int
	selected *comic.Volume
}

func newVolumePicker(volumes []*comic.Volume) volumePickerModel {
	// Default to the latest volume, where new pages usually go.
	return volumePickerModel{volumes: volumes, cursor: len(volumes) - 1}
}

func (m volumePickerModel) Init() tea.Cmd {
	return nil
}

func (m volumePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.volumes)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.volumes[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m volumePickerModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select a volume") + "\n\n")
	for i, v := range m.volumes {
		line := fmt.Sprintf("  %s (%d pages)", v.Title, len(v.PageOrder()))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("›"+line[1:]) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + listDimStyle.Render("↑/↓ move · enter select · q cancel") + "\n")
	return b.String()
}

// pickVolume runs the interactive volume picker and returns the chosen
// volume, or errAborted when the user cancels.
func pickVolume(volumes []*comic.Volume) (*comic.Volume, error) {
	final, err := tea.NewProgram(newVolumePicker(volumes)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(volumePickerModel)
	if !ok || m.selected == nil {
		return nil, errAborted
	}
	return m.selected, nil
}
