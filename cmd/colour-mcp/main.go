package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/ironsheep/colour-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colour-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colour-tools-mcp - MCP server for colour conversion, harmony and image colour tools")
			fmt.Println()
			fmt.Println("Usage: colour-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOUR_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  COLOUR_MCP_SWATCH_CELL=<px>    Default swatch cell size (1-512, default 32)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logging goes to stderr; stdout is for MCP protocol
	level := slog.LevelInfo
	if os.Getenv("COLOUR_MCP_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithVersion(Version),
	}
	if v := os.Getenv("COLOUR_MCP_SWATCH_CELL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 512 {
			logger.Warn("ignoring invalid COLOUR_MCP_SWATCH_CELL", "value", v)
		} else {
			opts = append(opts, server.WithSwatchCell(n))
		}
	}

	logger.Debug("starting colour MCP server", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New(opts...)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
