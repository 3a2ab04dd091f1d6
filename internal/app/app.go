package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dori/gestor/internal/config"
	"github.com/dori/gestor/internal/db"
	"github.com/dori/gestor/internal/logging"
	"github.com/dori/gestor/internal/notify"
	"github.com/dori/gestor/internal/store"
	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// App holds the application state and dependencies
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	DB       *db.DB
	Storage  *db.LocalStorage
	Changes  *store.Changes
	Accounts *store.AccountStore
	Tasks    *store.TaskStore
	Projects *store.ProjectStore
	Notifier *notify.Notifier
	DataDir  string

	lockFile    *flock.Flock
	unsubscribe func()
}

// New creates a new application instance and loads every collection.
// A nil cfg loads the config file.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	o := appOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log := o.logger
	if log == nil {
		built, err := logging.New(cfg)
		if err != nil {
			return nil, err
		}
		log = built
	}

	app := &App{
		Config:   cfg,
		Log:      log,
		DataDir:  cfg.DataDir,
		Notifier: notify.NewNotifier(cfg.Notifications),
		Changes:  store.NewChanges(),
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database
	app.Storage = db.NewLocalStorage(database)

	app.unsubscribe = app.Changes.Subscribe(func(c store.Change) {
		log.Debug("change published",
			zap.String("key", c.Key), zap.String("op", string(c.Op)), zap.String("ref", c.Ref))
	})

	storeOpts := []store.Option{store.WithLogger(log), store.WithChanges(app.Changes)}
	app.Accounts = store.NewAccountStore(store.NewAccountBinding(app.Storage, storeOpts...), storeOpts...)
	app.Tasks = store.NewTaskStore(store.NewTaskBinding(app.Storage, storeOpts...), storeOpts...)
	app.Projects = store.NewProjectStore(store.NewProjectBinding(app.Storage, storeOpts...), storeOpts...)

	if err := app.load(); err != nil {
		app.Close()
		return nil, err
	}

	log.Info("application started", zap.String("data_dir", cfg.DataDir))
	return app, nil
}

// load reads all three collections. Stores refuse writes until this ran.
func (a *App) load() error {
	if err := a.Accounts.Load(); err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	if err := a.Tasks.Load(); err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	if err := a.Projects.Load(); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	return nil
}

// Reset drops the stored collection for key and reloads it, which writes the
// seed back
func (a *App) Reset(key string) error {
	var reload func() error
	switch key {
	case store.AccountsKey:
		reload = a.Accounts.Load
	case store.TasksKey:
		reload = a.Tasks.Load
	case store.ProjectsKey:
		reload = a.Projects.Load
	default:
		return fmt.Errorf("unknown collection %q", key)
	}

	if err := a.Storage.RemoveItem(key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	a.Log.Info("collection reset", zap.String("key", key))
	return reload()
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "gestor.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return ErrAlreadyRunning
	}

	return nil
}

// ErrAlreadyRunning is returned when another process holds the data directory
var ErrAlreadyRunning = errors.New("another instance of gestor is already running")

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.unsubscribe != nil {
		a.unsubscribe()
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()
	_ = a.Log.Sync()

	return errors.Join(errs...)
}
