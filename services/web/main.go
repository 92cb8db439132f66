package main

import (
	"context"
	"embed"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/canteen/pkg"
	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/appetiteclub/canteen/services/web/internal/web"
	"github.com/aquamarinepk/aqm"
	"github.com/aquamarinepk/aqm/events"
	"github.com/aquamarinepk/aqm/middleware"
	aqmtemplate "github.com/aquamarinepk/aqm/template"
)

//go:embed assets
var assetsFS embed.FS

const (
	appNamespace = "CANTEEN"
	appName      = "canteen-web"
	appVersion   = "0.1.0"
)

func main() {
	config, err := aqm.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := aqm.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	tmplMgr := aqmtemplate.NewManager(assetsFS, aqmtemplate.WithLogger(logger))

	backendURL, _ := config.GetString("services.canteen.url")
	if backendURL == "" {
		backendURL = "http://localhost:5000"
	}
	cookie, _ := config.GetString("services.canteen.cookie")
	client := canteen.NewClient(backendURL, canteen.WithCookie(cookie))

	lifecycles := []interface{}{tmplMgr}

	// Audit events go to NATS only when a server is configured.
	var publisher events.Publisher
	natsURL, _ := config.GetString("nats.url")
	if natsURL != "" {
		natsPublisher, err := pkg.NewNATSPublisher(natsURL)
		if err != nil {
			log.Fatalf("Cannot connect to NATS publisher: %v", err)
		}
		publisher = natsPublisher
		lifecycles = append(lifecycles, aqm.LifecycleHooks{
			OnStop: func(context.Context) error { return natsPublisher.Close() },
		})
	}

	audit := web.NewAuditLogger(logger, publisher)

	handler, err := web.NewHandler(tmplMgr, client, audit, logger)
	if err != nil {
		log.Fatalf("%s(%s) cannot bind pages: %v", appName, appVersion, err)
	}

	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger:      logger,
		DisableCORS: false,
	})

	options := []aqm.Option{
		aqm.WithConfig(config),
		aqm.WithLogger(logger),
		aqm.WithHTTPMiddleware(stack...),
		aqm.WithHTTPServerModules("web.port", handler),
		aqm.WithLifecycle(lifecycles...),
		aqm.WithHealthChecks(appName),
	}

	ms := aqm.NewMicro(options...)
	logger.Infof("Starting %s(%s) against %s", appName, appVersion, backendURL)

	if err := ms.Run(ctx); err != nil {
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
