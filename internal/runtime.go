package internal

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/2beens/hrload/internal/config"
	"github.com/2beens/hrload/internal/db"
	"github.com/2beens/hrload/internal/events"
	"github.com/2beens/hrload/internal/loadapi"
	"github.com/2beens/hrload/internal/loadservice"
	"github.com/2beens/hrload/internal/loadstore"
	"github.com/2beens/hrload/internal/resultcache"
	"github.com/2beens/hrload/internal/telemetry/metrics"
	"github.com/2beens/hrload/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCacheTTL    = 24 * time.Hour
	sentryFlushTimeout = 5 * time.Second
)

var _ loadapi.LoadService = (*loadservice.Service)(nil)

// Runtime holds everything both binaries share: storage, caches, telemetry
// and the load service wired on top of them.
type Runtime struct {
	Config *config.Config

	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Repo        *loadstore.Repo
	Service     *loadservice.Service

	MetricsManager *metrics.Manager
	PromRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewRuntimeParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
	// ServiceName names the process in traces and metrics.
	ServiceName string
}

func NewRuntime(ctx context.Context, params NewRuntimeParams) (*Runtime, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		MaxConns:       int32(cfg.Workers * 2),
		TracingEnabled: params.HoneycombTracingEnabled || cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("hrload", params.ServiceName, promRegistry)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, params.ServiceName, rdb)
	if err != nil {
		dbPool.Close()
		_ = rdb.Close()
		return nil, err
	}

	cacheTTL := defaultCacheTTL
	if cfg.CacheTTLHours > 0 {
		cacheTTL = time.Duration(cfg.CacheTTLHours) * time.Hour
	}
	cache := resultcache.NewLayered(
		resultcache.NewLocalStore(cfg.LocalCacheMB, cacheTTL),
		resultcache.NewRedisStore(rdb, cacheTTL),
	)

	sink := events.Multi{
		events.NewLogrusSink(log.StandardLogger(), log.DebugLevel).
			WithLevel(events.ColumnsUndetected, log.WarnLevel).
			WithLevel(events.SamplesDropped, log.InfoLevel),
		events.NewMetricsSink(metricsManager),
	}

	repo := loadstore.NewRepo(dbPool)
	service := loadservice.NewService(loadservice.NewServiceParams{
		UserID:       cfg.UserID,
		Daily:        repo,
		Activities:   repo,
		HRParams:     repo,
		Store:        repo,
		Cache:        cache,
		Sink:         sink,
		DeriveBounds: cfg.DeriveHRBounds,
		Workers:      cfg.Workers,
		Metrics:      metricsManager,
	})

	return &Runtime{
		Config:         cfg,
		DBPool:         dbPool,
		RedisClient:    rdb,
		Repo:           repo,
		Service:        service,
		MetricsManager: metricsManager,
		PromRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// Close releases the connections and flushes traces and sentry events.
func (rt *Runtime) Close() {
	if rt.otelShutdown != nil {
		rt.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if rt.RedisClient != nil {
		if err := rt.RedisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if rt.DBPool != nil {
		log.Debugln("closing db pool ...")
		rt.DBPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(sentryFlushTimeout); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
