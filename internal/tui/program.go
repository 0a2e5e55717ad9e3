package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/framepick/framepick/internal/config"
	"github.com/framepick/framepick/internal/media"
	"github.com/framepick/framepick/internal/session"
)

// Run starts the Bubble Tea trim program over a probed asset.
func Run(cfg config.Config, asset *media.Asset, store *session.Store, maxDuration time.Duration) error {
	model, err := NewModel(cfg, asset, store, maxDuration)
	if err != nil {
		return fmt.Errorf("build trim model: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err = p.Run()
	return err
}
