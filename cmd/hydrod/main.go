// Command hydrod serves the hydraulic analysis engine over HTTP: one-shot
// scenario analysis plus the material and fitting reference tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/constants"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/log"
	"github.com/Zeeshan123123/mksolutions-vibelux-sub005/internal/server"
)

func main() {
	addr := flag.String("addr", ":8220", "Listen address for the analysis API")
	logFile := flag.String("log-file", "", "Optional path for a size-rotated log file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hydrod %s\n", constants.Version)
		os.Exit(0)
	}

	var err error
	if *logFile != "" {
		err = log.InitWithFile(*debug, *logFile)
	} else {
		err = log.Init(*debug)
	}
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	srv := server.New(ctx, &wg, *addr, log.GetSugaredLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case err := <-errCh:
		if err != nil {
			log.Errorf("Server error: %v", err)
			cancel()
			wg.Wait()
			os.Exit(1)
		}
	}

	cancel()
	wg.Wait()
	log.Info("shutdown complete")
}
