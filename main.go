package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nanodraw/nanodraw/config"
	"github.com/nanodraw/nanodraw/internal/components/sqlite"
	"github.com/nanodraw/nanodraw/internal/modules/credential"
	"github.com/nanodraw/nanodraw/internal/modules/display"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
	"github.com/nanodraw/nanodraw/internal/modules/model"
	"github.com/nanodraw/nanodraw/internal/modules/queue"
	"github.com/nanodraw/nanodraw/internal/service/http"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":8787", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	queue.InitGenerationQueue(ctx, wg)
	sqlite.InitSQLite(config.GConfig.DatabaseFile)
	sqlite.DB.AutoMigrate(&model.Generation{})
	credential.Init(config.GConfig.CredentialFile)
	display.Init(config.GConfig.ImageTTLDuration())
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
		wg.Wait()
		display.Shutdown()
		os.Exit(0)
	}(osSignal)
	http.Serve(httpPort)
}
