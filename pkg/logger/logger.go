package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Options задает уровень и формат вывода.
type Options struct {
	Level  string
	Format string
}

// Init (пере)настраивает глобальный логгер.
// Вызывается один раз при старте приложения и в TestMain.
func Init(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для продакшена, "text" - для разработки.
	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Quiet переводит логгер в режим только ошибок. Удобно для тестов и autoplay.
func Quiet() {
	Log.SetLevel(logrus.ErrorLevel)
}
