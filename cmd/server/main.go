package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/text/language"

	"authorlist/internal/listing"
	"authorlist/internal/logger"
	"authorlist/internal/response"
	"authorlist/internal/server"
	"authorlist/internal/storage/authors"
)

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

func getBoolEnv(key string) bool {
	if val := strings.ToLower(os.Getenv(key)); val == "yes" || val == "on" || val == "true" {
		return true
	}

	return false
}

var (
	logLevel      = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "debug"))
	logFormat     = strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text"))
	storage       = strings.ToLower(getEnvOrDefault("STORAGE", "pgx"))
	dbConnStr     = os.Getenv("DATABASE_URL")
	dbCollation   = strings.TrimSpace(os.Getenv("DB_COLLATION"))
	authorsFile   = getEnvOrDefault("AUTHORS_FILE", "authors.json")
	collateLocale = getEnvOrDefault("COLLATE_LOCALE", "und")
	bindAddr      = getEnvOrDefault("BIND_ADDR", ":8080")
	debugMode     = getBoolEnv("DEBUG_MODE")

	errUnknownStorage = errors.New("STORAGE must be one of pgx, sqlx or memory")
)

func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	var lvl slog.Level
	lvlErr := lvl.UnmarshalText([]byte(logLevel))
	if lvlErr != nil {
		lvl = slog.LevelDebug
	}

	err := logger.SetupSLog(logger.Format(logFormat), lvl, path.Dir(path.Dir(path.Dir(thisFile))), middleware.RequestIDKey)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	if lvlErr != nil {
		slog.Error("Invalid log level specified in LOG_LEVEL, one of debug, info, warn or error expected")
		os.Exit(1)
	}

	ar, err := openRepository(context.Background())
	if err != nil {
		slog.Error("failed to open " + storage + " author storage: " + err.Error())
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Mount("/", server.Handler(
		listing.NewService(ar, slog.Default()),
		&response.Responder{DebugMode: debugMode},
	))

	slog.Info("listening on " + bindAddr)
	slog.Error("aborting: " + http.ListenAndServe(bindAddr, r).Error())
	os.Exit(1)
}

func openRepository(ctx context.Context) (authors.Repository, error) {
	switch storage {
	case "pgx":
		cfg, err := pgxpool.ParseConfig(dbConnStr)
		if err != nil {
			return nil, err
		}

		cfg.ConnConfig.Tracer = logger.NewPGXTracer(slog.Default())

		pg, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return authors.NewPGXRepository(pg, slog.Default(), dbCollation), nil
	case "sqlx":
		db, err := authors.OpenSQLX(ctx, dbConnStr)
		if err != nil {
			return nil, err
		}

		return authors.NewSQLXRepository(db, slog.Default(), dbCollation), nil
	case "memory":
		tag, err := language.Parse(collateLocale)
		if err != nil {
			return nil, err
		}

		return authors.LoadMemoryRepository(authorsFile, tag)
	default:
		return nil, errUnknownStorage
	}
}
