// Package app is the bubbletea root model: it wires the listing client and
// the playback controller to the folder, track and player bar panels.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/albums/internal/keymap"
	"github.com/llehouerou/albums/internal/notify"
	"github.com/llehouerou/albums/internal/playback"
	"github.com/llehouerou/albums/internal/player"
	"github.com/llehouerou/albums/internal/ui/folderlist"
	"github.com/llehouerou/albums/internal/ui/styles"
	"github.com/llehouerou/albums/internal/ui/tracklist"
)

// FocusTarget is the panel receiving navigation keys.
type FocusTarget int

const (
	FocusFolders FocusTarget = iota
	FocusTracks
)

// Options configures the application.
type Options struct {
	Folders       []string // fixed folder list; empty discovers folders
	InitialFolder string   // folder opened at startup
	Volume        float64
	OnEnd         playback.EndPolicy
}

// Deps are the collaborators of the application.
type Deps struct {
	Lister   Lister
	Loader   player.Loader
	Notifier notify.Notifier // nil disables notifications
	Remote   Remote          // nil disables media controls
	Stderr   <-chan string   // captured C library output, may be nil
}

// Model is the root application model.
type Model struct {
	lister Lister
	loader player.Loader
	ctrl   *playback.Controller
	hub    *hub
	remote Remote
	stderr <-chan string

	folders  folderlist.Model
	tracks   tracklist.Model
	spinner  spinner.Model
	help     help.Model
	showHelp bool
	focus    FocusTarget

	playerKeys *keymap.Resolver
	seekKeys   *keymap.Resolver

	folderFetch *fetcher
	trackFetch  *fetcher
	discover    bool
	spinning    bool

	seekOrigin float64 // fraction seek mode started at
	dragging   bool    // progress bar drag in progress
	unmuteTo   float64 // volume restored by unmute
	status     string  // last warning shown in the footer

	width, height int
	startup       tea.Cmd
}

// New creates the application model. Nothing is fetched until Init.
func New(opts Options, deps Deps) Model {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	h := &hub{nowPlaying: notify.NewNowPlaying(notifier), remote: deps.Remote}
	ctrl := playback.New(deps.Loader, h, playback.Options{Volume: opts.Volume, OnEnd: opts.OnEnd})
	h.ctrl = ctrl

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = styles.T().S().Muted

	m := Model{
		lister:      deps.Lister,
		loader:      deps.Loader,
		ctrl:        ctrl,
		hub:         h,
		remote:      deps.Remote,
		stderr:      deps.Stderr,
		folders:     folderlist.New(),
		tracks:      tracklist.New(),
		spinner:     sp,
		help:        help.New(),
		focus:       FocusFolders,
		playerKeys:  keymap.NewPlayerResolver(),
		seekKeys:    keymap.NewSeekResolver(),
		folderFetch: &fetcher{},
		trackFetch:  &fetcher{},
		discover:    len(opts.Folders) == 0,
		unmuteTo:    1,
	}
	m.folders.SetFocused(true)

	var cmds []tea.Cmd
	if m.discover {
		cmds = append(cmds, m.loadFolders())
	} else {
		m.folders.SetFolders(opts.Folders)
	}
	if opts.InitialFolder != "" {
		cmds = append(cmds, m.openFolder(opts.InitialFolder))
		m.setFocus(FocusTracks)
	}
	cmds = append(cmds,
		waitForPlayerEvent(deps.Loader.Events()),
		m.waitForRemote(),
		waitForStderr(deps.Stderr),
		m.startSpinner(),
	)
	m.startup = tea.Batch(cmds...)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.startup
}

// Close stops playback and releases the collaborators.
func (m Model) Close() {
	m.folderFetch.cancelPending()
	m.trackFetch.cancelPending()
	m.ctrl.Close()
	if err := m.hub.nowPlaying.Close(); err != nil {
		logNotifyError(err)
	}
	if m.remote != nil {
		if err := m.remote.Close(); err != nil {
			logRemoteError(err)
		}
	}
}

// Controller returns the playback controller.
func (m Model) Controller() *playback.Controller {
	return m.ctrl
}

func (m *Model) setFocus(f FocusTarget) {
	m.focus = f
	m.folders.SetFocused(f == FocusFolders)
	m.tracks.SetFocused(f == FocusTracks)
}

func (m Model) loading() bool {
	return m.folderFetch.pending() || m.trackFetch.pending() || m.ctrl.State().Loading
}

// startSpinner starts the spinner if something is loading and it is not
// already running.
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.loading() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}
