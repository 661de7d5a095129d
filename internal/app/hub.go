package app

import (
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/errmsg"
	"github.com/llehouerou/albums/internal/notify"
	"github.com/llehouerou/albums/internal/playback"
)

// hub is the controller's observer. It fans every state change out to
// desktop notifications and media controls; bubbletea renders after each
// Update, so the view reads the controller directly.
type hub struct {
	ctrl       *playback.Controller
	nowPlaying *notify.NowPlaying
	remote     Remote
}

func (h *hub) PlaybackChanged(s playback.State) {
	if err := h.nowPlaying.Observe(s); err != nil {
		logNotifyError(err)
	}
	if h.remote != nil {
		h.remote.Observe(s, h.ctrl.Playlist().Len())
	}
}

func logNotifyError(err error) {
	zlog.Debug().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
}

func logRemoteError(err error) {
	zlog.Debug().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
}
