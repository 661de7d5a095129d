package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/llehouerou/albums/internal/app"
	"github.com/llehouerou/albums/internal/config"
	"github.com/llehouerou/albums/internal/errmsg"
	"github.com/llehouerou/albums/internal/icons"
	"github.com/llehouerou/albums/internal/listing"
	"github.com/llehouerou/albums/internal/logger"
	"github.com/llehouerou/albums/internal/mpris"
	"github.com/llehouerou/albums/internal/notify"
	"github.com/llehouerou/albums/internal/playback"
	"github.com/llehouerou/albums/internal/player"
	"github.com/llehouerou/albums/internal/stderr"
)

var (
	cli        = kingpin.New("albums", "Terminal player for albums served over an HTTP directory listing")
	configFile = cli.Flag("config", "Config file, read after the default locations").Short('c').String()
	serverURL  = cli.Flag("server", "Server URL, e.g. http://localhost:8000").Short('s').String()
	logLevel   = cli.Flag("log-level", "Log level (debug, info, warn, error)").Enum("debug", "info", "warn", "error")
	folder     = cli.Arg("folder", "Folder to open at startup").String()
)

func main() {
	// Missing .env is fine
	_ = godotenv.Load()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Options{
		File:      *configFile,
		ServerURL: *serverURL,
		LogLevel:  *logLevel,
	})
	if err != nil {
		return err
	}

	logFile, err := cfg.LogFile()
	if err != nil {
		return err
	}
	closer, err := logger.Init(logger.Config{
		Level:   cfg.Log.Level,
		File:    logFile,
		Session: uuid.NewString(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	zlog.Info().Str("server", cfg.ServerURL).Str("folder", *folder).Msg("starting")

	icons.Init(cfg.Icons)

	// Before the audio device is opened
	if err := stderr.Start(); err != nil {
		zlog.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	for _, ext := range cfg.Extensions {
		if !player.IsMusicFile("track" + ext) {
			zlog.Warn().Str("extension", ext).Msg("no decoder for extension, its tracks will fail to play")
		}
	}

	lister, err := listing.New(listing.Config{
		BaseURL:    cfg.ServerURL,
		AlbumsPath: cfg.AlbumsPath,
		Extensions: cfg.Extensions,
		Timeout:    cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}

	// Track downloads may outlast the request timeout, so it only bounds
	// the wait for the response headers.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.RequestTimeout
	loader := player.NewHTTPLoader(&http.Client{Transport: transport})
	maxTrack, err := cfg.TrackSizeLimit()
	if err != nil {
		return err
	}
	loader.SetMaxTrackSize(maxTrack)

	deps := app.Deps{
		Lister: lister,
		Loader: loader,
		Stderr: stderr.Messages,
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
		} else {
			deps.Notifier = n
		}
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New()
		if err != nil {
			zlog.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			deps.Remote = adapter
		}
	}

	m := app.New(app.Options{
		Folders:       cfg.Folders,
		InitialFolder: *folder,
		Volume:        cfg.InitialVolume(),
		OnEnd:         playback.ParseEndPolicy(cfg.OnTrackEnd),
	}, deps)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if err != nil {
		return errors.Wrap(err, "run program")
	}
	zlog.Info().Msg("exiting")
	return nil
}
