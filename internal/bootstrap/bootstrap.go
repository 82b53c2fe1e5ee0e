package bootstrap

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	alertoutadapter "lifeagent/internal/modules/alert/adapter/out"
	alertdomain "lifeagent/internal/modules/alert/domain"
	alertservice "lifeagent/internal/modules/alert/service"
	alertusecase "lifeagent/internal/modules/alert/usecase"
	daemoninadapter "lifeagent/internal/modules/daemon/adapter/in"
	daemonoutadapter "lifeagent/internal/modules/daemon/adapter/out"
	daemonservice "lifeagent/internal/modules/daemon/service"
	daemonusecase "lifeagent/internal/modules/daemon/usecase"
	extensioninadapter "lifeagent/internal/modules/extension/adapter/in"
	extensionoutadapter "lifeagent/internal/modules/extension/adapter/out"
	extensionusecase "lifeagent/internal/modules/extension/usecase"
	mobileinadapter "lifeagent/internal/modules/mobile/adapter/in"
	mobileoutadapter "lifeagent/internal/modules/mobile/adapter/out"
	mobileout "lifeagent/internal/modules/mobile/port/out"
	mobileservice "lifeagent/internal/modules/mobile/service"
	mobileusecase "lifeagent/internal/modules/mobile/usecase"
	notesinadapter "lifeagent/internal/modules/notes/adapter/in"
	notesoutadapter "lifeagent/internal/modules/notes/adapter/out"
	notesservice "lifeagent/internal/modules/notes/service"
	notesusecase "lifeagent/internal/modules/notes/usecase"
	notifyinadapter "lifeagent/internal/modules/notify/adapter/in"
	notifyoutadapter "lifeagent/internal/modules/notify/adapter/out"
	notifyout "lifeagent/internal/modules/notify/port/out"
	notifyservice "lifeagent/internal/modules/notify/service"
	notifyusecase "lifeagent/internal/modules/notify/usecase"
	sweepoutadapter "lifeagent/internal/modules/sweep/adapter/out"
	sweepout "lifeagent/internal/modules/sweep/port/out"
	sweepservice "lifeagent/internal/modules/sweep/service"
	sweepusecase "lifeagent/internal/modules/sweep/usecase"
	trackerinadapter "lifeagent/internal/modules/tracker/adapter/in"
	trackeroutadapter "lifeagent/internal/modules/tracker/adapter/out"
	trackerdomain "lifeagent/internal/modules/tracker/domain"
	trackerservice "lifeagent/internal/modules/tracker/service"
	trackerusecase "lifeagent/internal/modules/tracker/usecase"
	"lifeagent/internal/platform/clock"
	"lifeagent/internal/platform/config"
	"lifeagent/internal/platform/id"
	uiapp "lifeagent/internal/ui/app"
)

type App struct {
	Config       config.Config
	TrackerCLI   trackerinadapter.CLIHandler
	NotesCLI     notesinadapter.CLIHandler
	NotifyCLI    notifyinadapter.CLIHandler
	DaemonCLI    daemoninadapter.CLIHandler
	ExtensionCLI extensioninadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config, log hclog.Logger) (*App, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}
	ids := id.NewSequence()
	app := &App{Config: cfg}

	presenters, queue, err := buildPresenters(cfg, clk, ids, log, app)
	if err != nil {
		return nil, err
	}
	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifyService(presenters, queue, log.Named("notify")))

	rules := make([]alertdomain.Rule, 0, len(cfg.Rules))
	for _, raw := range cfg.Rules {
		rule, err := alertdomain.NewRule(raw.Name, raw.Pattern, raw.Title, raw.Message)
		if err != nil {
			return nil, fmt.Errorf("alert rules: %w", err)
		}
		rules = append(rules, rule)
	}
	alertUC := alertusecase.NewInteractor(alertservice.NewAlertService(
		rules,
		alertoutadapter.NewNotifyAdapter(notifyUC),
		log.Named("alert"),
	))

	registry := trackeroutadapter.NewMemoryUnitRegistry()
	trackerUC := trackerusecase.NewInteractor(trackerservice.NewTrackerService(
		clk,
		registry,
		trackeroutadapter.NewNotifyAdapter(notifyUC),
		trackerdomain.NewDistractingSet(cfg.Distracting),
		cfg.Threshold,
		log.Named("tracker"),
	), registry, alertUC)

	var tabs sweepout.TabLister = sweepoutadapter.NewTrackerTabs(trackerUC)
	if cfg.Chrome.URL != "" {
		tabs = sweepoutadapter.NewChromeTabs(cfg.Chrome.URL, cfg.Chrome.Timeout)
	}
	sweepUC := sweepusecase.NewInteractor(sweepservice.NewSweepService(
		tabs,
		sweepoutadapter.NewNotifyAdapter(notifyUC),
		cfg.Distracting,
		log.Named("sweep"),
	))

	kv, err := notesoutadapter.NewSQLiteKVStore(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new kv store: %w", err)
	}
	app.closers = append(app.closers, kv.Close)
	notesUC := notesusecase.NewInteractor(
		notesservice.NewNotesService(kv, log.Named("notes")),
		notesoutadapter.NewMarkdownExporter(),
		clk,
	)

	var origin mobileout.Origin = mobileoutadapter.NewEmbeddedOrigin()
	if cfg.MobileDir != "" {
		origin = mobileoutadapter.NewDirOrigin(cfg.MobileDir)
	}
	mobileUC := mobileusecase.NewInteractor(mobileservice.NewMobileService(
		origin,
		mobileoutadapter.NewMemoryCache(),
		log.Named("mobile"),
	))

	mux := http.NewServeMux()
	trackerinadapter.NewHTTPHandler(trackerUC).Register(mux)
	notesinadapter.NewHTTPHandler(notesUC).Register(mux)
	notifyinadapter.NewHTTPHandler(notifyUC).Register(mux)
	mobileinadapter.NewHTTPHandler(mobileUC).Register(mux)

	daemonUC := daemonusecase.NewInteractor(daemonservice.NewDaemonService(
		daemonoutadapter.NewFileDaemonStore(cfg.PIDPath, cfg.SocketPath, cfg.LogPath),
		daemonoutadapter.NewJSONRPCServer(),
		daemonoutadapter.NewJSONRPCClient(),
		daemonoutadapter.NewTrackerAdapter(trackerUC),
		daemonoutadapter.NewSweepAdapter(sweepUC),
		daemonoutadapter.NewShellAdapter(mobileUC),
		requestLog(log.Named("http"), mux),
		daemonservice.Options{
			ListenAddr:     cfg.ListenAddr,
			SweepInterval:  cfg.SweepInterval,
			ShutdownPeriod: config.DefaultShutdownPeriod,
			RunArgs:        []string{"daemon", "run", "--dir", cfg.Dir},
		},
		clk,
		log.Named("daemon"),
	))

	app.TrackerCLI = trackerinadapter.NewCLIHandler(trackerUC)
	app.NotesCLI = notesinadapter.NewCLIHandler(notesUC)
	app.NotifyCLI = notifyinadapter.NewCLIHandler(notifyUC)
	app.DaemonCLI = daemoninadapter.NewCLIHandler(daemonUC)
	app.ExtensionCLI = extensioninadapter.NewCLIHandler(extensionusecase.NewInteractor(
		extensionoutadapter.NewEmbeddedBundle(),
		extensionoutadapter.NewDirWriter(),
		cfg.ListenAddr,
	))
	return app, nil
}

func buildPresenters(cfg config.Config, clk clock.Clock, ids id.Generator, log hclog.Logger, app *App) ([]notifyout.Presenter, notifyout.Queue, error) {
	presenters := make([]notifyout.Presenter, 0, len(cfg.Notifier.Kinds))
	var queue notifyout.Queue
	for _, kind := range cfg.Notifier.Kinds {
		switch kind {
		case "log":
			presenters = append(presenters, notifyoutadapter.NewLogPresenter(log.Named("notification")))
		case "queue":
			queue = notifyoutadapter.NewRingQueue(clk, ids, cfg.Notifier.QueueCapacity)
			presenters = append(presenters, queue)
		case "command":
			presenters = append(presenters, notifyoutadapter.NewCommandPresenter(cfg.Notifier.Command))
		case "plugin":
			presenter := notifyoutadapter.NewPluginPresenter(cfg.Notifier.Plugin, log.Named("presenter"))
			app.closers = append(app.closers, func() error {
				presenter.Close()
				return nil
			})
			presenters = append(presenters, presenter)
		default:
			return nil, nil, fmt.Errorf("unsupported notifier kind %q", kind)
		}
	}
	return presenters, queue, nil
}

// Close releases the database and any presenter plugin processes.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLog(log hclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(started))
	})
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.DaemonCLI, app.NotesCLI, app.Config.Threshold)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
