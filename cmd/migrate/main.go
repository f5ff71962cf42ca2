package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/adagency/backend/internal/config"
	"github.com/adagency/backend/internal/dbmigrate"
	"github.com/adagency/backend/internal/logging"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default), up   未適用のマイグレーションをすべて適用
  down            すべてのマイグレーションを戻す
  steps N         N 件進める（負数で戻す）
  force V         dirty 状態を解除してバージョンを V に設定
  version         現在のバージョンを表示`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO", "text")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	mg, err := dbmigrate.Open(cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("open migrator failed", "error", err)
	}
	defer func() {
		if err := mg.Close(); err != nil {
			slog.Warn("close migrator", "error", err)
		}
	}()

	switch cmd {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down()
	case "steps":
		err = mg.Steps(intArg())
	case "force":
		err = mg.Force(intArg())
	case "version":
	default:
		usage()
	}
	if err != nil {
		logging.Fatal("migration failed", "command", cmd, "error", err)
	}

	version, dirty, ok, err := mg.Version()
	switch {
	case err != nil:
		logging.Fatal("read version failed", "error", err)
	case !ok:
		slog.Info("no migrations applied", "command", cmd)
	default:
		slog.Info("migration state", "command", cmd, "version", version, "dirty", dirty)
	}
}

func intArg() int {
	if len(os.Args) < 3 {
		usage()
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		usage()
	}
	return n
}
