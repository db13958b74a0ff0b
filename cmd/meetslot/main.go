package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/meetslot/internal/api"
	"github.com/nikmy/meetslot/internal/calendar"
	"github.com/nikmy/meetslot/internal/finder"
	"github.com/nikmy/meetslot/pkg/errors"
	"github.com/nikmy/meetslot/pkg/logger"
)

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	source, err := calendar.New(ctx, log, cfg.Calendar)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init calendar source"))
	}

	server := api.NewServer(cfg.API, log, finder.New(log, cfg.Finder), source)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		defer close(stopped)
		log.Infof("graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown server"))
		}
	})

	log.Infof("serving on %s, environment %s", cfg.API.HTTP.Addr, cfg.Environment)
	err = server.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		log.Panic(errors.WrapFail(err, "serve"))
	}

	<-stopped
	log.Infof("shutdown complete")
}
