package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel adjusts the minimum logged level. Unknown names are ignored and
// the current level kept.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", SanitizeForLog(level), log.GetLevel())
		return
	}
	log.SetLevel(parsed)
}

func Debugf(format string, args ...interface{}) { log.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { log.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }
