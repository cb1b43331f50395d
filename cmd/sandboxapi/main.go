package main

import (
	"fmt"
	"os"

	"app/internal/config"
	"app/internal/sandbox"

	"github.com/decred/slog"
	"github.com/joho/godotenv"
)

func main() {
	// .envは任意（無ければ環境変数のみ）
	_ = godotenv.Load()

	cfg, err := config.LoadSandbox()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	db, err := sandbox.Connect(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "db connect:", err)
		os.Exit(1)
	}
	if err := sandbox.Migrate(db); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	if err := sandbox.Seed(db); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}

	log := slog.NewBackend(os.Stdout).Logger("SNDB")
	log.SetLevel(slog.LevelInfo)

	srv := sandbox.NewServer(db, cfg, log)
	e := srv.Echo()

	log.Infof("sandbox api listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
