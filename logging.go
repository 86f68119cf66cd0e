package vulkano

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var loggerOnce sync.Once

var logger *log.Logger

func getLogger() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "vulkano",
		})
		logger.SetLevel(log.WarnLevel)
	})
	return logger
}

// SetLogLevel changes how chatty the package is. The default is WarnLevel;
// debugging a resource allocation problem is usually easier at DebugLevel.
func SetLogLevel(level log.Level) {
	getLogger().SetLevel(level)
}

func logDebug(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Debugf(msg, args...)
}

func logInfo(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Infof(msg, args...)
}

func logWarn(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Warnf(msg, args...)
}

func logError(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Errorf(msg, args...)
}
