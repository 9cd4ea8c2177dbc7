package inits

import (
	"fmt"

	"go.uber.org/zap"
)

func Logger(debugMode bool, level string) (*zap.Logger, error) {
	var zc zap.Config
	if debugMode {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	// 留空时保持默认级别（开发 debug ，生产 info）
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		zc.Level = lvl
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
