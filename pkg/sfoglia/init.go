// Package sfoglia is an in-process page-navigation and history engine
// for a desktop launcher's panel surface. It swaps displayed views
// without a reload, tracks back/forward history with branch
// invalidation, separates URL-visible route params from transient
// props, and can detach a panel into a separate window while
// transferring its full navigation context intact.
//
// The package handles configuration, logging, localization of route
// display names, and wires together the route registry, router
// instances, deep-link codec, and handoff channel. Rendering, theming,
// and the native window layer stay with the host application.
package sfoglia

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/deeplink"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/handoff"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/router"
)

// Options configures the navigation engine. Explicit fields override
// values from the config file at ConfigPath.
type Options struct {
	ConfigPath string        // Optional TOML config file; missing file is not an error
	LogPath    string        // Full path for the log file including filename (creates parent directories)
	LogLevel   string        // "debug", "info", "warn", "error"; default info
	Scheme     string        // Deep-link URI scheme; default "sfoglia"
	Locale     string        // BCP 47 tag for route display names, e.g. "it-IT"
	HandoffDir string        // Directory for file-backed handoff slots; empty keeps slots in process memory
	HandoffTTL time.Duration // How long an unconsumed handoff slot survives; default 10m
}

// fileConfig mirrors Options in the TOML config file.
type fileConfig struct {
	LogPath           string `toml:"log_path"`
	LogLevel          string `toml:"log_level"`
	Scheme            string `toml:"scheme"`
	Locale            string `toml:"locale"`
	HandoffDir        string `toml:"handoff_dir"`
	HandoffTTLMinutes int    `toml:"handoff_ttl_minutes"`
}

// App owns the engine's shared collaborators: logger, localizer, route
// registry, deep-link codec, handoff channel, and shell hooks. Routers
// are constructed per panel surface via NewRouter; there is no package
// global, so two windows' engines never interfere except through the
// handoff channel.
type App struct {
	opts      Options
	log       *internal.Logger
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	registry  *router.Registry
	codec     *deeplink.Codec
	channel   *handoff.Channel
	shell     *Shell
}

// Init loads configuration, sets up logging and localization, and
// builds the shared collaborators. Must be called before any other
// sfoglia functions.
func Init(options Options) (*App, error) {
	if options.ConfigPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(options.ConfigPath, &fc); err == nil {
			if options.LogPath == "" {
				options.LogPath = fc.LogPath
			}
			if options.LogLevel == "" {
				options.LogLevel = fc.LogLevel
			}
			if options.Scheme == "" {
				options.Scheme = fc.Scheme
			}
			if options.Locale == "" {
				options.Locale = fc.Locale
			}
			if options.HandoffDir == "" {
				options.HandoffDir = fc.HandoffDir
			}
			if options.HandoffTTL == 0 && fc.HandoffTTLMinutes > 0 {
				options.HandoffTTL = time.Duration(fc.HandoffTTLMinutes) * time.Minute
			}
		}
	}

	log := internal.NewLogger(options.LogPath, options.LogLevel)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	var localizer *i18n.Localizer
	if options.Locale != "" {
		localizer = i18n.NewLocalizer(bundle, options.Locale)
	} else {
		localizer = i18n.NewLocalizer(bundle)
	}

	var store handoff.SlotStore
	if options.HandoffDir != "" {
		fs, err := handoff.NewFileStore(options.HandoffDir, options.HandoffTTL)
		if err != nil {
			log.Close()
			return nil, NewNavigationError("init", err)
		}
		store = fs
	} else {
		store = handoff.NewMemoryStore(options.HandoffTTL)
	}

	codec := deeplink.NewCodec(options.Scheme, log.Logger)

	return &App{
		opts:      options,
		log:       log,
		bundle:    bundle,
		localizer: localizer,
		registry:  router.NewRegistry(localizer, log.Logger),
		codec:     codec,
		channel:   handoff.NewChannel(store, log.Logger),
		shell:     NewShell(),
	}, nil
}

// Close releases the engine's resources. Must be called before program
// exit when a log file is in use.
func (a *App) Close() {
	a.log.Close()
}

// LoadMessageFile adds a TOML translation file of route display names
// to the localization bundle. Call during startup, before routers
// resolve any names.
func (a *App) LoadMessageFile(path string) error {
	if _, err := a.bundle.LoadMessageFile(path); err != nil {
		return NewNavigationError("load_messages", err)
	}
	return nil
}

// Registry returns the shared route registry. Register all routes,
// including the fallback entry, before calling NewRouter.
func (a *App) Registry() *router.Registry {
	return a.registry
}

// Codec returns the deep-link codec.
func (a *App) Codec() *deeplink.Codec {
	return a.codec
}

// Handoff returns the handoff channel shared by this process's
// surfaces (and, with a file-backed store, by detached processes).
func (a *App) Handoff() *handoff.Channel {
	return a.channel
}

// Shell returns the host-window boundary hooks.
func (a *App) Shell() *Shell {
	return a.shell
}

// Logger returns the engine logger for consumers that want to share it.
func (a *App) Logger() *internal.Logger {
	return a.log
}

// NewRouter constructs an independent router over the shared registry
// and codec. One per panel surface.
func (a *App) NewRouter() (*router.Router, error) {
	r, err := router.New(router.Config{
		Registry: a.registry,
		Codec:    a.codec,
		Log:      a.log.Logger,
	})
	if err != nil {
		return nil, NewNavigationError("new_router", err)
	}
	return r, nil
}

// Detach captures r's full navigation context and writes it to a fresh
// handoff slot, returning the single-use id to pass to the new window
// (conventionally via the constants.HandoffIDEnvVar environment
// variable or a startup flag).
func (a *App) Detach(r *router.Router) (handoffID string, err error) {
	id, err := a.channel.Begin(handoff.Capture(r))
	if err != nil {
		return "", NewNavigationError("detach", err)
	}
	return id, nil
}

// Adopt seeds a freshly built router from the best available source:
// handoff slot, then deep link, then defaultRoute. Never fails; every
// degraded source is logged and skipped.
func (a *App) Adopt(r *router.Router, handoffID, startURL, defaultRoute string) {
	handoff.Adopt(r, a.channel, a.codec, handoff.AdoptOptions{
		HandoffID: handoffID,
		StartURL:  startURL,
		Default:   defaultRoute,
	}, a.log.Logger)
}

// AdoptFromEnv is Adopt fed from the process environment, the
// conventional startup path for a detached window: the handoff id
// arrives under constants.HandoffIDEnvVar and an optional deep link
// under constants.StartURLEnvVar.
func (a *App) AdoptFromEnv(r *router.Router, defaultRoute string) {
	a.Adopt(r,
		os.Getenv(constants.HandoffIDEnvVar),
		os.Getenv(constants.StartURLEnvVar),
		defaultRoute)
}
