// Package wire provides dependency injection for the hive application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/example/hive/internal/adapters/actor"
	cliadapter "github.com/example/hive/internal/adapters/cli"
	"github.com/example/hive/internal/adapters/memory"
	"github.com/example/hive/internal/adapters/sqlstore"
	"github.com/example/hive/internal/app"
	"github.com/example/hive/internal/config"
	"github.com/example/hive/internal/db"
	"github.com/example/hive/internal/metrics"
	"github.com/example/hive/internal/ports/primary"
	"github.com/example/hive/internal/ports/secondary"
)

// Services is the wired application.
type Services struct {
	Config   *config.Config
	Store    secondary.StoreContext
	Hives    primary.HiveService
	Sections primary.SectionService
	Metrics  *metrics.Recorder

	db *sql.DB
}

// Close releases the database connection, if any.
func (s *Services) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Build opens the configured store and constructs the services on top of it.
func Build(ctx context.Context, cfg *config.Config) (*Services, error) {
	s := &Services{Config: cfg}

	switch cfg.Driver {
	case config.DriverMemory:
		s.Store = memory.NewStore()
	default:
		conn, err := db.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		s.db = conn
		s.Store = sqlstore.NewStore(conn, cfg.Driver)
	}

	opts := []app.ServiceOption{app.WithLogger(log.Logger)}
	if cfg.MetricsEnabled {
		s.Metrics = metrics.New()
		opts = append(opts, app.WithMetrics(s.Metrics))
	}

	user := actor.NewContextUser(cfg.DefaultUser)

	hives, err := app.NewHiveService(s.Store, user, opts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	sections, err := app.NewSectionService(s.Store, user, opts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Hives = hives
	s.Sections = sections

	return s, nil
}

var (
	cfg      *config.Config
	services *Services
	once     sync.Once
)

// Configure sets the configuration used by the singleton. It must be called
// before the first accessor.
func Configure(c *config.Config) {
	cfg = c
}

// Get returns the singleton Services instance.
func Get() *Services {
	once.Do(initServices)
	return services
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := cfg
	if c == nil {
		loaded, err := config.Load(".")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		c = loaded
	}

	s, err := Build(context.Background(), c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}
	services = s
}

// HiveService returns the singleton HiveService instance.
func HiveService() primary.HiveService {
	return Get().Hives
}

// SectionService returns the singleton SectionService instance.
func SectionService() primary.SectionService {
	return Get().Sections
}

// HiveAdapter returns a new HiveAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func HiveAdapter() *cliadapter.HiveAdapter {
	return HiveAdapterWithOutput(os.Stdout)
}

// HiveAdapterWithOutput returns a new HiveAdapter writing to the given output.
func HiveAdapterWithOutput(out io.Writer) *cliadapter.HiveAdapter {
	return cliadapter.NewHiveAdapter(HiveService(), out)
}

// SectionAdapter returns a new SectionAdapter writing to stdout.
func SectionAdapter() *cliadapter.SectionAdapter {
	return SectionAdapterWithOutput(os.Stdout)
}

// SectionAdapterWithOutput returns a new SectionAdapter writing to the given output.
func SectionAdapterWithOutput(out io.Writer) *cliadapter.SectionAdapter {
	return cliadapter.NewSectionAdapter(SectionService(), out)
}
