// @title           Project Grading Assistant API
// @version         1.0
// @description     Upload student project documents and generate AI grading feedback with an exportable Word report.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/data/store"
	"github.com/avasari/GraderAPI/internal/domain/sessionModel"
	"github.com/avasari/GraderAPI/internal/extract"
	"github.com/avasari/GraderAPI/internal/grading"
	"github.com/avasari/GraderAPI/internal/handlers"
	"github.com/avasari/GraderAPI/internal/llm"
	"github.com/avasari/GraderAPI/internal/server"
	"github.com/avasari/GraderAPI/internal/worker"
	"github.com/avasari/GraderAPI/pkg/logger_i"
)

var (
	listenAddr       string
	stopJanitorChan  chan bool
	janitorWaitGroup sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	stopJanitorChan = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init session store - Redis when it's up, in-memory otherwise
	var sessionStore sessionModel.SessionStore
	var sweeper worker.Sweeper

	if redisSessionStore := store.NewRedisSessionStore(serviceContext); redisSessionStore != nil {
		sessionStore = redisSessionStore
	} else {
		logger.Error("Redis store is offline")
		memStore := store.NewInMemorySessionStore()
		sessionStore = memStore
		sweeper = memStore
	}

	logger.Info("Starting grading service")
	gradingService := grading.NewService(extract.Extract, llm.New)

	handlers.InitSessionHandler(gradingService, sessionStore)

	//the janitor only runs against the in-memory store
	worker.InitJanitor(sweeper, stopJanitorChan, &janitorWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		JanitorStop:      stopJanitorChan,
		Group:            &janitorWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
