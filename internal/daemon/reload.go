package daemon

import (
	"os"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/xdg/zrpcd/internal/clog"
	"github.com/xdg/zrpcd/internal/config"
)

// watchConfig starts watching the configuration file. It returns nil when
// the watcher cannot be created; SIGHUP still reloads in that case.
func (d *Daemon) watchConfig() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		clog.Warn("create config watcher: %v", err)
		return nil
	}
	if err := watcher.Add(d.configPath); err != nil {
		clog.Info("not watching %s: %v", d.configPath, err)
	} else {
		clog.Info("watching config file %s", d.configPath)
	}
	return watcher
}

func (d *Daemon) handleConfigEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	if clog.DebugEnabled(clog.DebugGeneral) {
		clog.Debug("config file %s changed (%s)", event.Name, event.Op)
	}

	if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
		time.Sleep(reloadSettle)
		if _, err := os.Stat(d.configPath); os.IsNotExist(err) {
			clog.Info("config file %s removed, keeping current settings", d.configPath)
			return
		}
		// The replacement is a new inode; the old watch went with the old one.
		if err := watcher.Add(d.configPath); err != nil {
			clog.Warn("re-watch %s: %v", d.configPath, err)
		}
	}
	d.reload()
}

// reload rereads the configuration file and applies what changed. On error
// the running settings are kept.
func (d *Daemon) reload() {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		clog.Error("reload configuration: %v", err)
		return
	}
	if err := d.apply(d.cfg, cfg); err != nil {
		clog.Error("reload configuration: %v", err)
		return
	}
	d.cfg = cfg
	clog.Notice("configuration reloaded")
}

// apply moves the logger from the old configuration to the new one. Only
// settings that differ between the two files are touched, so changes made
// through vty survive unrelated edits to the file.
func (d *Daemon) apply(old, cur *config.Config) error {
	prev, err := old.ClogConfig()
	if err != nil {
		return err
	}
	next, err := cur.ClogConfig()
	if err != nil {
		return err
	}

	if next.File != prev.File || next.Level != prev.Level {
		if next.File == "" {
			d.logger.Flush()
			d.logger.SetLevel(next.Level)
		} else {
			d.logger.SetLogTarget(next.File, next.Level.String())
		}
	}
	if next.Stdout != prev.Stdout {
		d.logger.SetStdout(next.Stdout)
	}
	if next.Syslog != prev.Syslog {
		d.logger.SetSyslog(next.Syslog)
	}
	if next.RecordPriority != prev.RecordPriority {
		d.logger.SetRecordPriority(next.RecordPriority)
	}
	if next.Facility != prev.Facility {
		clog.Warn("syslog facility change to %s takes effect after restart", next.Facility)
	}
	if !slices.Equal(old.Debug.Categories, cur.Debug.Categories) {
		d.logger.ResetDebug()
		for _, c := range next.Debug.Enabled() {
			d.logger.EnableDebug(c)
		}
	}
	if cur.VTY.Socket != old.VTY.Socket {
		clog.Warn("vty socket change to %s takes effect after restart", cur.VTY.Socket)
		cur.VTY.Socket = old.VTY.Socket
	}
	return nil
}
