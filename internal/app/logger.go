package app

import (
	"io"

	"technician-dispatch/internal/config"
	"technician-dispatch/internal/logx"
)

func newLogger(cfg *config.Config, w io.Writer) (logx.Logger, error) {
	return logx.New(cfg.Log.Backend, cfg.Log.Level, w)
}
