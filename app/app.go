package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/handler"
	"github.com/Dula827/booknest-frontend/internal/server"
	"github.com/Dula827/booknest-frontend/internal/service/auth"
	"github.com/Dula827/booknest-frontend/internal/service/books"
	"github.com/Dula827/booknest-frontend/internal/service/images"
	"github.com/Dula827/booknest-frontend/internal/service/lending"
	"github.com/Dula827/booknest-frontend/internal/service/wishlist"
	"github.com/Dula827/booknest-frontend/internal/session"
	"github.com/Dula827/booknest-frontend/internal/workflow"
	"github.com/Dula827/booknest-frontend/pkg/logger"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "booknest")

	sess, err := session.New(cfg.Session.Path)
	if err != nil {
		log.Fatal("session store", zap.Error(err))
	}

	booksSvc := books.NewService(log, cfg, sess)
	wishlistSvc := wishlist.NewService(log, cfg, sess)
	lendingSvc := lending.NewService(log, cfg, sess)
	imagesSvc := images.NewService(log, cfg)

	h := handler.New(log, sess,
		auth.NewService(log, cfg, sess),
		booksSvc, wishlistSvc, lendingSvc,
		workflow.New(log, booksSvc, wishlistSvc, lendingSvc, imagesSvc),
	)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
