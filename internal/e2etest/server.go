package e2etest

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/myrjola/fitfokus/internal/logging"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

const (
	// LogAddrKey is the attribute the application logs its listen address under.
	LogAddrKey = "addr"
	// LogDsnKey is the attribute the application logs its SQLite DSN under.
	LogDsnKey = "sqlDsn"
)

// Server is a running instance of the web application under test.
type Server struct {
	url          string
	client       *Client
	db           *sql.DB
	cancel       context.CancelCauseFunc
	done         chan struct{}
	shutdownOnce sync.Once
}

// startup collects the attributes the application logs while starting.
type startup struct {
	addr chan string
	dsn  chan string
}

func newStartup() *startup {
	return &startup{addr: make(chan string, 1), dsn: make(chan string, 1)}
}

func (s *startup) logger(logSink io.Writer) *slog.Logger {
	return slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case LogAddrKey:
				offer(s.addr, a.Value.String())
			case LogDsnKey:
				offer(s.dsn, a.Value.String())
			}
			return a
		},
	})))
}

// offer keeps the first value and drops later ones so that repeated log lines never block the application.
func offer(ch chan string, v string) {
	select {
	case ch <- v:
	default:
	}
}

func (s *startup) wait(ctx context.Context) (string, string, error) {
	var addr, dsn string
	for addr == "" || dsn == "" {
		select {
		case <-ctx.Done():
			return "", "", fmt.Errorf("server did not start: %w", context.Cause(ctx))
		case addr = <-s.addr:
		case dsn = <-s.dsn:
		}
	}
	return addr, dsn, nil
}

// StartServer runs the application in the background and returns once its health endpoint answers.
//
// logSink receives the application logs, usually a testhelpers.Writer. lookupEnv has the signature of [os.LookupEnv].
// run must log its listen address under LogAddrKey and its database DSN under LogDsnKey. The server is shut down
// when the test ends.
func StartServer(
	t *testing.T,
	logSink io.Writer,
	lookupEnv func(string) (string, bool),
	run func(context.Context, *slog.Logger, func(string) (string, bool)) error,
) (*Server, error) {
	ctx, cancel := context.WithCancelCause(t.Context())
	server := &Server{
		url:          "",
		client:       nil,
		db:           nil,
		cancel:       cancel,
		done:         make(chan struct{}),
		shutdownOnce: sync.Once{},
	}
	t.Cleanup(server.Shutdown)

	s := newStartup()
	logger := s.logger(logSink)
	go func() {
		defer close(server.done)
		if err := run(ctx, logger, lookupEnv); err != nil {
			cancel(err)
		}
	}()

	addr, dsn, err := s.wait(ctx)
	if err != nil {
		return nil, err
	}
	server.url = "http://" + addr
	if server.client, err = NewClient(server.url); err != nil {
		return nil, fmt.Errorf("new client: %w", err)
	}
	if err = server.client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return nil, fmt.Errorf("wait for ready: %w", err)
	}
	if server.db, err = sql.Open("sqlite3", dsn); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return server, nil
}

// Client returns a client with its own cookie jar, i.e. its own anonymous identity.
func (s *Server) Client() *Client {
	return s.client
}

func (s *Server) URL() string {
	return s.url
}

// DB is a direct handle on the application database for arranging and inspecting state.
func (s *Server) DB() *sql.DB {
	return s.db
}

// Shutdown stops the application and waits for it to return. It is safe to call more than once.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.cancel(nil)
		<-s.done
		if s.db != nil {
			_ = s.db.Close()
		}
	})
}
