package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/canteen/cmd/canteenctl/internal/commands"
	"github.com/aquamarinepk/aqm"
)

const (
	appName    = "canteenctl"
	appVersion = "0.1.0"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Subcommand flags are parsed per command; config comes from the
	// CANTEENCTL_* environment.
	config, err := aqm.LoadConfig("CANTEENCTL", nil)
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logLevel, _ := config.GetString("log.level")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := aqm.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := commands.NewBackend(config)
	command := os.Args[1]
	args := os.Args[2:]
	out := os.Stdout

	switch command {
	case "menu":
		if err := commands.Menu(ctx, api, out); err != nil {
			log.Fatalf("❌ Menu failed: %v", err)
		}

	case "queue":
		if err := commands.Queue(ctx, api, out); err != nil {
			log.Fatalf("❌ Queue status failed: %v", err)
		}

	case "stats":
		if err := commands.Stats(ctx, api, out); err != nil {
			log.Fatalf("❌ Today stats failed: %v", err)
		}

	case "orders":
		if err := commands.Orders(ctx, api, out); err != nil {
			log.Fatalf("❌ Kitchen orders failed: %v", err)
		}

	case "order":
		values, err := commands.ParseOrderArgs(args)
		if err != nil {
			fmt.Printf("Invalid order flags: %v\n\n", err)
			printUsage()
			os.Exit(2)
		}
		if err := commands.Order(ctx, api, out, values); err != nil {
			log.Fatalf("❌ Order failed: %v", err)
		}
		logger.Info("Order submitted", "name", values["name"], "item_id", values["item_id"])

	case "update":
		orderID, status, err := commands.ParseUpdateArgs(args)
		if err != nil {
			fmt.Printf("Invalid update flags: %v\n\n", err)
			printUsage()
			os.Exit(2)
		}
		if err := commands.Update(ctx, api, out, orderID, status); err != nil {
			log.Fatalf("❌ Status update failed: %v", err)
		}
		logger.Info("Order status updated", "order_id", orderID, "status", status)

	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - Canteen ordering and kitchen commands

Usage:
  %s <command> [flags]

Commands:
  menu         List the menu
  queue        Show the current queue status
  stats        Show today's order statistics
  orders       List active kitchen orders
  order        Place an order (--name, --reg-id, --item-id, --quantity)
  update       Change an order status (--order-id, --status)
  version      Print version information
  help         Show this help message

Environment Variables:
  CANTEENCTL_SERVICES_CANTEEN_URL      Backend base URL (default: http://localhost:5000)
  CANTEENCTL_SERVICES_CANTEEN_COOKIE   Session cookie forwarded to the backend
  CANTEENCTL_LOG_LEVEL                 Log level: debug, info, warn, error (default: info)

Examples:
  %s menu
  %s order --name Asha --reg-id 21BCE1001 --item-id 3 --quantity 2
  %s update --order-id 42 --status READY

`, appName, appName, appName, appName, appName)
}
