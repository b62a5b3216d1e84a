package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/avasari/GraderAPI/internal/adapter/utils"
	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/middleware"
	"github.com/avasari/GraderAPI/internal/web"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	JanitorStop      chan bool
	Group            *sync.WaitGroup
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Get("/", web.FormHandler)
	r.Router.Get("/healthz", middleware.GetHandler)
	r.Router.Get("/providers", middleware.ProvidersHandler)
	r.Router.Post("/session/feedback", middleware.SubmitFeedbackHandler)
	r.Router.Get("/session/feedback", middleware.GetFeedbackHandler)
	r.Router.Delete("/session/feedback", middleware.ClearSessionHandler)
	r.Router.Get("/session/report", middleware.DownloadReportHandler)
	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	println("\nServer is shutting down", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully: %s", err)
		}

		//stop the janitor
		close(shutdownParams.JanitorStop)
		shutdownParams.Group.Wait()
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully is shutting down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
