package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/marvinridge/lostfound/internal/api"
	"github.com/marvinridge/lostfound/internal/auth"
	"github.com/marvinridge/lostfound/internal/config"
	"github.com/marvinridge/lostfound/internal/llm"
	"github.com/marvinridge/lostfound/internal/mcp"
	"github.com/marvinridge/lostfound/internal/media"
	"github.com/marvinridge/lostfound/internal/store"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "hashpw":
		cmdHashPassword(os.Args[2:])
	case "version":
		fmt.Printf("lostfound %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lostfound — school lost & found backend

Usage:
  lostfound serve [--config config.toml] [--addr :8000]
  lostfound mcp [--config config.toml]
  lostfound hashpw <password>
  lostfound version
  lostfound help

Commands:
  serve     Start the HTTP API server
  mcp       Serve the MCP tools over stdio
  hashpw    Print the bcrypt hash for an admin password
  version   Print version
  help      Show this help`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config.toml")
	addr := fs.String("addr", "", "listen address (overrides config)")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	st, err := store.FromConfig(cfg.Store)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}

	var uploader media.Uploader
	cdn := media.NewCloudinary(cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret, cfg.Media.Folder)
	if cdn.Configured() {
		uploader = cdn
	}

	llmClient := llm.NewFromConfig(cfg.AI)
	a := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryMin)

	apiHandler := api.New(st, llmClient, uploader, a, cfg.AI, cfg.Auth)
	mux := http.NewServeMux()
	apiHandler.RegisterRoutes(mux)

	log.Printf("lostfound %s listening on %s", version, cfg.Server.Addr)
	log.Printf("store: %s", cfg.Store.Driver)
	if cfg.AI.Enabled {
		log.Printf("ai: enabled (providers: %v)", llmClient.Providers())
	} else {
		log.Printf("ai: disabled (deterministic fallbacks only)")
	}

	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config.toml")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	st, err := store.FromConfig(cfg.Store)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}

	if err := mcp.ServeStdio(mcp.NewServer(st)); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}

func cmdHashPassword(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: lostfound hashpw <password>")
		os.Exit(1)
	}
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}
	fmt.Println(hash)
}
