package config

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerOnce sync.Once
	appLogger  *zap.Logger
)

func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		appLogger = l
	})
	return appLogger
}
