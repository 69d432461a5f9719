package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 30
)

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

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	// every entry carries the environment, so shared log sinks can be filtered
	if params.Environment != "" {
		logrus.AddHook(newFieldsHook(logrus.Fields{"env": params.Environment}))
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetOutput(output(params.LogFileName, params.LogToStdout))
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 0.2,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

func output(logFileName string, alsoStdout bool) io.Writer {
	if logFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		LocalTime:  false, // UTC
		Compress:   true,
	}

	if !alsoStdout {
		return rotated
	}
	logrus.Printf("writing logs to %s and STDOUT", logFileName)
	return pkg.NewCombinedWriter(os.Stdout, rotated)
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// fieldsHook adds static fields to every entry that does not already set them.
type fieldsHook struct {
	fields logrus.Fields
}

func newFieldsHook(fields logrus.Fields) *fieldsHook {
	return &fieldsHook{fields: fields}
}

func (h *fieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
