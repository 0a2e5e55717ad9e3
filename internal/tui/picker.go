package tui

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// ErrPickerCancelled is returned when the user quits the picker without
// choosing a file.
var ErrPickerCancelled = errors.New("picker cancelled")

// fileItem is the list item backing a discovered media file row.
type fileItem struct {
	Path string
}

// List item interface methods.
func (it fileItem) Title() string       { return filepath.Base(it.Path) }
func (it fileItem) Description() string { return "" }
func (it fileItem) FilterValue() string { return it.Path }

// fileDelegate renders fileItem rows with a dimmed directory suffix.
type fileDelegate struct{}

func (d fileDelegate) Height() int                             { return 1 }
func (d fileDelegate) Spacing() int                            { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d fileDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(fileItem)
	if !ok {
		return
	}
	prefix := "  "
	lineStyle := lipgloss.NewStyle()
	if index == m.Index() {
		prefix = "> "
		lineStyle = lineStyle.Foreground(lipgloss.Color("69")).Bold(true)
	}
	line := fmt.Sprintf("%s%02d. %s  %s", prefix, index+1, filepath.Base(it.Path),
		dimStyle.Render(filepath.Dir(it.Path)))
	_, _ = fmt.Fprint(w, lineStyle.Render(line))
}

// pickerModel is a minimal list model for choosing one media file.
type pickerModel struct {
	list   list.Model
	chosen string
	done   bool
}

func newPickerModel(paths []string) pickerModel {
	items := make([]list.Item, 0, len(paths))
	for _, p := range paths {
		items = append(items, fileItem{Path: p})
	}
	lst := list.New(items, fileDelegate{}, 0, 0)
	lst.Title = "Pick a media file"
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(true)
	return pickerModel{list: lst}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		// Let the list's filter input consume keys first when active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch x.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(fileItem); ok {
				m.chosen = it.Path
				m.done = true
				return m, tea.Quit
			}
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// RunPicker shows a selectable list of media files and returns the chosen
// path.
func RunPicker(paths []string) (string, error) {
	p := tea.NewProgram(newPickerModel(paths), tea.WithAltScreen())

	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(pickerModel)
	if !ok || m.chosen == "" {
		return "", ErrPickerCancelled
	}
	return m.chosen, nil
}
