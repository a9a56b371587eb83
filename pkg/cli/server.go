package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mchmarny/heartrisk/pkg/config"
	"github.com/mchmarny/heartrisk/pkg/logging"
	"github.com/mchmarny/heartrisk/pkg/server"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 300
	serverMaxHeaderBytes      = 20
)

var (
	portFlag = &cli.IntFlag{
		Name:     "port",
		Usage:    "Port on which the server will listen",
		Value:    config.PortDefault,
		Required: false,
	}

	configFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "Path to a server config file (optional)",
		Required: false,
	}

	serverCmd = &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start local HTTP API server",
		Action:  cmdStartServer,
		Flags: []cli.Flag{
			portFlag,
			configFlag,
			debugFlag,
		},
	}
)

func cmdStartServer(c *cli.Context) error {
	applyFlags(c)

	cfg, err := serverConfig(c)
	if err != nil {
		return err
	}

	if cfg.Debug {
		logging.SetDefaultCLILogger("debug")
	} else {
		logging.SetDefaultCLILogger(cfg.Level)
	}

	address := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	s := &http.Server{
		Addr:           address,
		Handler:        server.New(version),
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "error", err)
		}
	}()

	slog.Info("server started", "address", fmt.Sprintf("http://%s", address))

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error shutting down server", "error", err)
	}
	return nil
}

// serverConfig resolves settings: config file when given, otherwise
// defaults, with the port flag taking precedence either way.
func serverConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String(configFlag.Name); path != "" {
		read, err := config.Read(path)
		if err != nil {
			return nil, err
		}
		cfg = read
	}

	if c.IsSet(portFlag.Name) {
		cfg.Port = c.Int(portFlag.Name)
	}
	if c.Bool(debugFlag.Name) {
		cfg.Debug = true
	}
	return cfg, nil
}
