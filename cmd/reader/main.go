package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/khj1212k/news-recommendation-service/internal/api"
	"github.com/khj1212k/news-recommendation-service/internal/config"
	"github.com/khj1212k/news-recommendation-service/internal/domain"
	"github.com/khj1212k/news-recommendation-service/internal/metrics"
	"github.com/khj1212k/news-recommendation-service/internal/session"
	"github.com/khj1212k/news-recommendation-service/internal/storage/sqlite"
	"github.com/khj1212k/news-recommendation-service/internal/telemetry"
)

const usage = `usage: reader [-config config.yaml] <command>

commands:
  signup  -email <email> -password <password>
  login   -email <email> -password <password>
  logout
  feed
  read    <newsletter-id> [-follow] [-save] [-hide] [-source <source-id>]
  popular [-category <category>]
  prefs   [-categories a,b] [-keywords x,y]
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	metrics.StartServer(cfg.MetricsAddr)

	db, err := sqlite.Open(cfg.Storage.TokenPath)
	if err != nil {
		logger.Error("failed to open token store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := sqlite.NewTokenStore(db)
	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, tokens, logger)
	reporter := telemetry.NewReporter(telemetry.Config{
		EventsPerSecond: cfg.Telemetry.EventsPerSecond,
		Burst:           cfg.Telemetry.Burst,
		SendTimeout:     cfg.Telemetry.SendTimeout,
	}, client, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	app := &app{
		tokens:   tokens,
		client:   client,
		reporter: reporter,
		logger:   logger,
	}

	err = app.run(ctx, flag.Args())

	// In-flight telemetry outlives the views; drain it before the
	// process exits so short commands do not lose events.
	reporter.Wait()

	if err != nil {
		os.Exit(1)
	}
}

type app struct {
	tokens   *sqlite.TokenStore
	client   *api.Client
	reporter *telemetry.Reporter
	logger   *slog.Logger
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "signup":
		return a.runAuth(ctx, args[1:], true)
	case "login":
		return a.runAuth(ctx, args[1:], false)
	case "logout":
		auth := session.NewAuth(a.client, a.tokens, a.logger)
		return auth.Logout(ctx)
	case "feed":
		return a.runFeed(ctx)
	case "read":
		return a.runRead(ctx, args[1:])
	case "popular":
		return a.runPopular(ctx, args[1:])
	case "prefs":
		return a.runPrefs(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) runAuth(ctx context.Context, args []string, signup bool) error {
	name := "login"
	if signup {
		name = "signup"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	auth := session.NewAuth(a.client, a.tokens, a.logger)

	var err error
	if signup {
		err = auth.Signup(ctx, *email, *password)
	} else {
		err = auth.Login(ctx, *email, *password)
	}
	if err != nil {
		fmt.Println(api.Message(err))
		return err
	}
	fmt.Println("ok")
	return nil
}

func (a *app) runFeed(ctx context.Context) error {
	view := session.NewFeedView(a.client, a.tokens, a.reporter.NewView(), a.logger)
	if err := view.Load(ctx); err != nil {
		fmt.Println(view.ErrorMessage())
		return err
	}

	for i, item := range view.Items() {
		fmt.Printf("%2d. [%s] %s (%s)\n", i+1, orElse(item.Category, "기타"), orElse(item.Title, "주요 이슈"), item.NewsletterID)
		fmt.Printf("    %s\n", item.Reason)
	}
	return nil
}

func (a *app) runRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("read: missing newsletter id")
	}
	id := args[0]

	fs := flag.NewFlagSet("read", flag.ExitOnError)
	follow := fs.Bool("follow", false, "follow this topic")
	save := fs.Bool("save", false, "save this newsletter")
	hide := fs.Bool("hide", false, "hide this topic")
	sourceID := fs.String("source", "", "open the source with this id")
	_ = fs.Parse(args[1:])

	view := session.NewDetailView(a.client, a.reporter.NewView(), a.logger, id)
	// Dwell must be recorded on every exit path.
	defer view.Close()

	if err := view.Load(ctx); err != nil {
		fmt.Println(view.ErrorMessage())
		return err
	}

	detail := view.Detail()
	fmt.Printf("[%s] %s\n\n", orElse(detail.Category, "기타"), orElse(detail.Title, "주요 이슈"))
	fmt.Println(detail.NewsletterText)
	if len(detail.Sources) > 0 {
		fmt.Println("\n출처:")
		for _, src := range detail.Sources {
			fmt.Printf("  %s  %s (%s)\n", src.ID, orElse(src.Title, src.URL), orElse(src.Publisher, ""))
		}
	}

	if *sourceID != "" {
		for _, src := range detail.Sources {
			if src.ID == *sourceID {
				view.SourceClick(src.ID)
				fmt.Printf("\n%s\n", src.URL)
			}
		}
	}
	if *follow {
		view.Feedback(domain.EventFollow)
	}
	if *save {
		view.Feedback(domain.EventSave)
	}
	if *hide {
		view.Feedback(domain.EventHide)
	}

	// Reading time is the dwell: keep the view open until Enter.
	fmt.Println("\n(계속하려면 Enter)")
	waitForEnter(ctx)
	return nil
}

func (a *app) runPopular(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("popular", flag.ExitOnError)
	category := fs.String("category", session.CategoryAll, "category filter")
	_ = fs.Parse(args)

	view := session.NewPopularView(a.client, a.logger)
	items, err := view.Load(ctx, *category)
	if err != nil {
		fmt.Println(api.Message(err))
		return err
	}

	for _, item := range items {
		fmt.Printf("[%s] %s · 기사 %d건\n", orElse(item.Category, "기타"), orElse(item.Title, "주요 이슈"), item.PopularityCount)
	}
	return nil
}

func (a *app) runPrefs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("prefs", flag.ExitOnError)
	categories := fs.String("categories", "", "comma-separated categories")
	keywords := fs.String("keywords", "", "comma-separated keywords")
	_ = fs.Parse(args)

	auth := session.NewAuth(a.client, a.tokens, a.logger)
	err := auth.SavePreferences(ctx, domain.Preferences{
		Categories: splitList(*categories),
		Keywords:   splitList(*keywords),
	})
	if err != nil {
		fmt.Println(api.Message(err))
		return err
	}
	fmt.Println("ok")
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func orElse(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

func waitForEnter(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		reader := bufio.NewReader(os.Stdin)
		_, _ = reader.ReadString('\n')
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
