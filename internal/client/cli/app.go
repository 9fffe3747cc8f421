package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/config"
	"github.com/researchhub/hubcli/internal/client/gate"
	"github.com/researchhub/hubcli/internal/client/metrics"
	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/client/notify"
	"github.com/researchhub/hubcli/internal/client/services"
	"github.com/researchhub/hubcli/internal/client/session"
	"github.com/researchhub/hubcli/internal/client/storage"
	"github.com/researchhub/hubcli/internal/logging"
)

// SessionView is the read side of the session store.
type SessionView interface {
	Token() (string, bool)
	Profile() (models.User, bool)
	Authenticated() bool
	Snapshot() session.Snapshot
}

// StatsSource reports request outcome counts for the stats command.
type StatsSource interface {
	Summary() []metrics.OutcomeCount
}

type App struct {
	out    io.Writer
	reader *bufio.Reader
	logger logging.Logger

	session SessionView
	gate    *gate.Gate
	router  *Router
	notices *notify.Board
	stats   StatsSource

	authService      services.AuthService
	workspaceService services.WorkspaceService
	searchService    services.SearchService
	documentService  services.DocumentService
	analysisService  services.AnalysisService
	paperService     services.PaperService

	// lastResults backs "import <n>", numbered as printed by the last search.
	lastResults []models.SearchResult
	// lastEmail prefills the login prompt after a registration.
	lastEmail string

	db *sql.DB
}

// NewApp opens the session database and wires the API client and services
// for cfg. Input is read from in and everything user-facing goes to out.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	db, err := storage.InitDatabase(ctx, cfg.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	store := session.Open(ctx, db, logger)
	router := NewRouter(logger)
	collector := metrics.NewCollector(prometheus.NewRegistry())

	apiClient, err := client.NewHTTPClient(cfg.APIURL, store, router,
		client.WithLogger(logger),
		client.WithMetrics(collector),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		out:     out,
		reader:  bufio.NewReader(in),
		logger:  logger,
		session: store,
		gate:    gate.New(store, router),
		router:  router,
		notices: notify.NewBoard(),
		stats:   collector,

		authService:      services.NewAuthService(apiClient, store, logger),
		workspaceService: services.NewWorkspaceService(apiClient),
		searchService:    services.NewSearchService(apiClient),
		documentService:  services.NewDocumentService(apiClient),
		analysisService:  services.NewAnalysisService(apiClient),
		paperService:     services.NewPaperService(apiClient),

		db: db,
	}
	return a, nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// enter shows route, through the gate when the route is protected. Any
// failure of the view, including the redirect, becomes a notice under id
// with fallback as its default text.
func (a *App) enter(ctx context.Context, route, id, fallback string, view func(context.Context) error) error {
	show := func(ctx context.Context) error {
		a.router.Navigate(route)
		return view(ctx)
	}

	var err error
	if gate.Protected(route) {
		err = a.gate.Enter(ctx, route, show)
	} else {
		err = show(ctx)
	}
	if err != nil {
		a.report(ctx, err, id, fallback)
	}
	return err
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
