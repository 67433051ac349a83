package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/apiclient"
	"github.com/odyssey-travel/odyssey-console/internal/cache"
	"github.com/odyssey-travel/odyssey-console/internal/config"
	"github.com/odyssey-travel/odyssey-console/internal/events"
	"github.com/odyssey-travel/odyssey-console/internal/observability"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/session"
)

const usage = `odyssey — travel platform console

Usage:
  odyssey login --email <email> --password <password> --role <CLIENT|AGENT|ADMIN>
  odyssey logout
  odyssey whoami
  odyssey support list [--search <term>] [--status <STATUS|ALL>]
  odyssey support raise --subject <text> --description <text> [--priority <LOW|MEDIUM|HIGH>] [--booking <id>]
  odyssey support status <ticketId> <newStatus>
  odyssey bookings
  odyssey packages [--mine]
  odyssey users list [--search <term>]
  odyssey users block <id> | users unblock <id>
  odyssey stats
`

// app bundles everything a command needs.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	sessions   session.Store
	api        *apiclient.Client
	tickets    repository.TicketRepository
	bookings   repository.BookingRepository
	packages   repository.PackageRepository
	users      repository.UserRepository
	stats      repository.StatsRepository
	auth       repository.AuthRepository
	snapshots  *cache.TicketSnapshots
	dispatcher events.Dispatcher
	kv         cache.KV
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	a := newApp(cfg, logger)
	defer a.close()

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, logger *zap.Logger) *app {
	sessions := session.NewFileStore(cfg.Session.FilePath)

	api := apiclient.New(cfg.API, logger, apiclient.WithTokenProvider(func() string {
		sess, err := sessions.Load()
		if err != nil {
			return ""
		}
		return sess.Token
	}))

	a := &app{
		cfg:        cfg,
		logger:     logger,
		sessions:   sessions,
		api:        api,
		tickets:    repository.NewTicketRepository(api),
		bookings:   repository.NewBookingRepository(api),
		packages:   repository.NewPackageRepository(api),
		users:      repository.NewUserRepository(api),
		stats:      repository.NewStatsRepository(api),
		auth:       repository.NewAuthRepository(api),
		dispatcher: events.NewInMemoryDispatcher(logger),
	}
	events.RegisterActivityLog(a.dispatcher, logger)

	if cfg.Cache.Enabled {
		a.kv = cache.NewRedisKV(cfg.Cache, logger)
		a.snapshots = cache.NewTicketSnapshots(a.kv, cfg.Cache.TTL(), logger)
	}
	return a
}

func (a *app) close() {
	if a.kv != nil {
		_ = a.kv.Close()
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "support":
		return a.cmdSupport(ctx, args)
	case "bookings":
		return a.cmdBookings(ctx)
	case "packages":
		return a.cmdPackages(ctx, args)
	case "users":
		return a.cmdUsers(ctx, args)
	case "stats":
		return a.cmdStats(ctx)
	case "help", "--help", "-h":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}

// currentSession loads the persisted identity or explains how to get one.
func (a *app) currentSession() (*session.Session, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("not logged in, run: odyssey login")
	}
	return sess, nil
}
