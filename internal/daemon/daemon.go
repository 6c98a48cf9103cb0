// Package daemon runs zrpcd: it configures logging, serves the vty socket
// and reapplies the configuration file when it changes. Every vty command,
// reload and signal is handled on the one goroutine running Run.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/xdg/zrpcd/internal/clog"
	"github.com/xdg/zrpcd/internal/config"
	"github.com/xdg/zrpcd/internal/vty"
	"github.com/xdg/zrpcd/internal/zrpc"
)

// ErrStopped is returned to vty sessions whose command arrives after the
// control loop has exited.
var ErrStopped = errors.New("zrpcd is shutting down")

// reloadSettle is how long to wait after a rename or remove event before
// looking for the replacement file. Editors save by writing a temporary
// file and renaming it over the original.
const reloadSettle = 200 * time.Millisecond

type request struct {
	line  string
	reply chan vty.Result
}

// Daemon is one zrpcd process.
type Daemon struct {
	configPath string
	logOpts    []clog.Option

	cfg     *config.Config
	logger  *clog.Logger
	shell   *vty.Shell
	server  *vty.Server
	context *zrpc.Context
	errno   *zrpc.ErrnoTable

	requests chan request
	reloads  chan struct{}
	ready    chan struct{}
	done     chan struct{}
}

// Option configures a Daemon.
type Option func(*Daemon)

// WithLogOptions passes options to the logger the daemon opens.
func WithLogOptions(opts ...clog.Option) Option {
	return func(d *Daemon) {
		d.logOpts = append(d.logOpts, opts...)
	}
}

// New creates a Daemon that reads its configuration from configPath, or
// from config.DefaultPath() when configPath is empty.
func New(configPath string, opts ...Option) *Daemon {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	d := &Daemon{
		configPath: configPath,
		context:    zrpc.NewContext(),
		errno:      zrpc.NewErrnoTable(),
		requests:   make(chan request),
		reloads:    make(chan struct{}, 1),
		ready:      make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ready is closed once the vty socket is accepting sessions.
func (d *Daemon) Ready() <-chan struct{} {
	return d.ready
}

// Context returns the notification counters shown by
// "show debugging zrpc stats".
func (d *Daemon) Context() *zrpc.Context {
	return d.context
}

// Errno returns the socket error histogram shown by
// "show debugging zrpc errno".
func (d *Daemon) Errno() *zrpc.ErrnoTable {
	return d.errno
}

// Reload asks the control loop to reread the configuration file. It does
// not wait for the reload to happen.
func (d *Daemon) Reload() {
	select {
	case d.reloads <- struct{}{}:
	default:
	}
}

// Run starts the daemon and blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		return err
	}
	d.cfg = cfg

	if err := d.openLogger(); err != nil {
		return err
	}
	defer d.closeLogger()

	d.shell = vty.NewShell(d.logger,
		vty.WithContext(d.Context),
		vty.WithErrnoTable(d.errno),
		vty.WithConfigWriter(d.saveRunningConfig),
	)
	d.replayRunningConfig()

	d.server = vty.NewServer(cfg.VTY.Socket, d.submit)
	if err := d.server.Start(); err != nil {
		return fmt.Errorf("start vty server on %s: %w", cfg.VTY.Socket, err)
	}
	clog.Notice("zrpcd started, vty socket %s", cfg.VTY.Socket)
	close(d.ready)

	watcher := d.watchConfig()
	if watcher != nil {
		defer watcher.Close()
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	d.loop(ctx, watcher, hup)

	close(d.done)
	if err := d.server.Stop(); err != nil {
		clog.Warn("stop vty server: %v", err)
	}
	clog.Notice("zrpcd stopped")
	return nil
}

func (d *Daemon) loop(ctx context.Context, watcher *fsnotify.Watcher, hup <-chan os.Signal) {
	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watcher != nil {
		events = watcher.Events
		watchErrs = watcher.Errors
	}

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.requests:
			req.reply <- d.shell.Execute(req.line)
		case <-hup:
			clog.Notice("received SIGHUP, reloading configuration")
			d.reload()
		case <-d.reloads:
			d.reload()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			d.handleConfigEvent(watcher, event)
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			clog.Warn("config watcher: %v", err)
		}
	}
}

// submit is the vty server's handler. It runs on a session goroutine and
// hands the line to the control loop.
func (d *Daemon) submit(line string) vty.Result {
	req := request{line: line, reply: make(chan vty.Result, 1)}
	select {
	case d.requests <- req:
	case <-d.done:
		return vty.Result{Status: vty.StatusError, Err: ErrStopped}
	}
	return <-req.reply
}

func (d *Daemon) openLogger() error {
	logCfg, err := d.cfg.ClogConfig()
	if err != nil {
		return err
	}

	logger, err := clog.Open(logCfg, d.logOpts...)
	if logger == nil {
		return fmt.Errorf("open logger: %w", err)
	}
	d.logger = logger
	clog.ReplaceGlobal(logger)
	clog.RedirectStdLog()
	if err != nil {
		clog.Warn("syslog unavailable, writing to console: %v", err)
	}
	return nil
}

func (d *Daemon) closeLogger() {
	d.logger.Flush()
	_ = d.logger.Close()
}

func (d *Daemon) replayRunningConfig() {
	path := d.cfg.VTY.RunningConfig
	if path == "" {
		return
	}
	lines, err := config.ReadRunningConfig(path)
	if err != nil {
		clog.Warn("%v", err)
		return
	}
	if lines == nil {
		return
	}
	if err := d.shell.LoadRunningConfig(lines); err != nil {
		clog.Warn("running config %s: %v", path, err)
	}
	clog.Info("replayed %d lines from %s", len(lines), path)
}

func (d *Daemon) saveRunningConfig(lines []string) error {
	if d.cfg.VTY.RunningConfig == "" {
		return vty.ErrNoConfigFile
	}
	return config.WriteRunningConfig(d.cfg.VTY.RunningConfig, lines)
}
