package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/hrload/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const sentryFlushTimeout = 5 * time.Second

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the standard logrus logger. The returned func flushes
// sentry and closes the log file, call it before the process exits.
func Setup(params LoggerSetupParams) func() {
	logger := logrus.StandardLogger()
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	cleanup := []func(){}
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logger.Errorf("sentry.Init: %s", err)
		} else {
			logger.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			cleanup = append(cleanup, func() {
				sentry.Flush(sentryFlushTimeout)
			})
			logger.Infoln("sentry set up successfully")
		}
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(os.Stdout)
		logger.Println("writing logs only to STDOUT")
		return closeAll(cleanup)
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	if err := pkg.EnsureDir(filepath.Dir(params.LogFileName)); err != nil {
		logger.Errorf("create logs dir: %s", err)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 10,
		LocalTime:  false,
		Compress:   true,
	}
	cleanup = append(cleanup, func() {
		_ = lumberJackLogger.Close()
	})

	var out io.Writer = lumberJackLogger
	if params.LogToStdout {
		logger.Println("writing logs to file and STDOUT")
		out = pkg.NewCombinedWriter(os.Stdout, lumberJackLogger)
	}
	logger.SetOutput(out)

	return closeAll(cleanup)
}

func closeAll(funcs []func()) func() {
	return func() {
		for _, f := range funcs {
			f()
		}
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
