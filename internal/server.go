package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hrload/internal/loadapi"
	"github.com/2beens/hrload/internal/middleware"
	"github.com/2beens/hrload/pkg"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const shutdownTimeout = 15 * time.Second

// Server exposes the load service over http, next to a separate metrics listener.
type Server struct {
	*Runtime

	httpServer        *http.Server
	metricsHttpServer *http.Server
}

func NewServer(rt *Runtime) *Server {
	return &Server{Runtime: rt}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("hrload-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteResponseBytes(w, "text/plain", []byte("I'm OK, thanks ;)"))
	}).Methods("GET").Name("root")

	loadHandler := loadapi.NewHandler(s.Service)
	loadHandler.SetupRoutes(
		r,
		redis_rate.NewLimiter(s.RedisClient),
		s.MetricsManager,
		s.Config.RangeRateLimitPerMin,
	)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(http.NotFound)

	r.Use(middleware.PanicRecovery(s.MetricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.MetricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: 5 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.PromRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.Config.PrometheusMetricsHost, s.Config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.MetricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.MetricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.Runtime.Close()
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.MetricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.MetricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
