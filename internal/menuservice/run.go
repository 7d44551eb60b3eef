package menuservice

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"smart-menu/internal/config"
	"smart-menu/internal/menu"
	"smart-menu/internal/menuservice/adapter/brokermessage"
	apihttp "smart-menu/internal/menuservice/api/http"
	"smart-menu/internal/menuservice/app/core"
	"smart-menu/internal/menuservice/app/services"
	"smart-menu/internal/mylogger"
)

type params struct {
	serviceParams *core.ServiceParams
	cfg           *config.Config
}

// Execute starts the menu service and blocks until shutdown.
func Execute(ctx context.Context, mylog mylogger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params, err := parseParams(args)
	if err != nil {
		if !errors.Is(err, core.ErrHelp) {
			mylog.Action("command_parse_failed").Error("Invalid command received", err)
		}
		return err
	}
	if err := validateParams(params); err != nil {
		mylog.Action("command_validation_failed").Error("Invalid command received", err)
		return err
	}
	mylog.Action("command_validation_completed").Info("Successfully validated params")

	data, err := loadMenu(params.cfg)
	if err != nil {
		mylog.Action("menu_load_failed").Error("Failed to load menu data", err)
		return err
	}
	mylog.Action("menu_loaded").Info("Menu data ready",
		"items", data.Catalog.Len(),
		"synonyms", data.Synonyms.Len(),
		"combos", data.Combos.Len(),
	)

	notifier, err := buildNotifier(newCtx, params.cfg, mylog)
	if err != nil {
		mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
		return err
	}
	defer func() {
		if err := notifier.Close(); err != nil {
			mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
		}
	}()

	menuService := services.NewMenuService(data, notifier, mylog)
	server := apihttp.NewServer(newCtx, params.serviceParams, menuService, mylog)

	g, gctx := errgroup.WithContext(newCtx)
	g.Go(server.Run)
	g.Go(func() error {
		<-gctx.Done()
		return server.Stop(context.Background())
	})
	return g.Wait()
}

func loadMenu(cfg *config.Config) (menu.Data, error) {
	if cfg.Menu.Path != "" {
		return menu.Load(cfg.Menu.Path)
	}
	return menu.LoadDefault()
}

func buildNotifier(ctx context.Context, cfg *config.Config, mylog mylogger.Logger) (core.INotifier, error) {
	if cfg.RMQ == nil {
		mylog.Action("mb_disabled").Info("RabbitMQ not configured, notifications go to the log")
		return brokermessage.NewLogNotifier(mylog), nil
	}
	return brokermessage.New(ctx, *cfg.RMQ, mylog)
}

// parseParams parses params from the terminal.
func parseParams(args []string) (*params, error) {
	fs := flag.NewFlagSet("smart-menu", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config.yaml", "path for config yaml")
	port := fs.Int("port", 3000, "Port to run the menu service")

	if err := fs.Parse(args); err != nil {
		return nil, core.ErrParseCmd
	}

	if *showHelp {
		fs.Usage()
		return nil, core.ErrHelp
	}

	p := &params{
		serviceParams: &core.ServiceParams{
			Port:       *port,
			ConfigPath: *configPath,
		},
	}
	return p, nil
}

// validateParams validates params and loads the config file.
func validateParams(p *params) error {
	cfg, err := config.LoadConfig(p.serviceParams.ConfigPath)
	if err != nil {
		return err
	}
	p.cfg = cfg

	if p.serviceParams.Port <= 0 || p.serviceParams.Port >= 65536 {
		return fmt.Errorf("port must be in [1: 65,535]: %d", p.serviceParams.Port)
	}
	return nil
}
