package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/framepick/framepick/internal/config"
	"github.com/framepick/framepick/internal/media"
	"github.com/framepick/framepick/internal/session"
	"github.com/framepick/framepick/internal/trimmer"
)

// assetSurface adapts a loaded asset to the interaction core's timeline
// surface. The content width is a fixed virtual coordinate space and the
// host never scrolls it.
type assetSurface struct {
	asset *media.Asset
}

func (s *assetSurface) CurrentDuration() (time.Duration, bool) {
	if !s.asset.Loaded() {
		return 0, false
	}
	return s.asset.Duration, true
}

func (s *assetSurface) ContentWidth() float64  { return surfaceContentWidth }
func (s *assetSurface) ScrollOffsetX() float64 { return 0 }

// chanListener bridges the core's synchronous listener callbacks into the
// Bubble Tea message loop. Sends never block; a full buffer drops the
// update, which the next report supersedes anyway.
type chanListener struct {
	ch chan positionMsg
}

func (l chanListener) PositionChanged(t time.Duration) { l.post(positionMsg{Time: t}) }
func (l chanListener) PositionSettled(t time.Duration) { l.post(positionMsg{Time: t, Settled: true}) }

func (l chanListener) post(msg positionMsg) {
	select {
	case l.ch <- msg:
	default:
	}
}

// mouseDrag tracks an in-flight mouse drag on one handle.
type mouseDrag struct {
	active  bool
	handle  trimmer.Handle
	originX float64 // virtual px where the press landed
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg      config.Config
	asset    *media.Asset
	store    *session.Store
	selector *trimmer.Selector

	// inbound position reports from the core's listener bridge
	posCh chan positionMsg

	// ui state
	active      trimmer.Handle // keyboard-focused handle
	drag        mouseDrag
	width       int
	height      int
	helpVisible bool
	thumb       time.Duration
	settled     bool
	statusLine  string
	quitting    bool

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model around a probed asset.
func NewModel(cfg config.Config, asset *media.Asset, store *session.Store, maxDuration time.Duration) (Model, error) {
	posCh := make(chan positionMsg, channelBufferSize)
	sel, err := trimmer.NewSelector(cfg.Trimmer(), &assetSurface{asset: asset}, chanListener{ch: posCh})
	if err != nil {
		return Model{}, err
	}
	sel.AssetChanged()
	if maxDuration > 0 {
		sel.SetMaxDuration(maxDuration)
	}
	return Model{
		cfg:      cfg,
		asset:    asset,
		store:    store,
		selector: sel,
		posCh:    posCh,
		active:   trimmer.PositionBar,
		keys:     newKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listenForPosition()
}

// listenForPosition returns a Tea command that waits for the next
// position report.
func (m Model) listenForPosition() tea.Cmd {
	return func() tea.Msg {
		return <-m.posCh
	}
}
