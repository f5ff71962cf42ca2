package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/adagency/backend/internal/config"
	"github.com/adagency/backend/internal/logging"
	"github.com/adagency/backend/internal/model"
	"github.com/adagency/backend/internal/repository"
	"github.com/adagency/backend/internal/service"
)

// passwordEnvVar lets scripts pass the password without a terminal.
const passwordEnvVar = "USERADMIN_PASSWORD"

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: useradmin <command> -username NAME

Commands:
  add      ユーザーを作成（パスワードは bcrypt でハッシュ化）
  verify   パスワードが一致するか確認

Password is read from $`+passwordEnvVar+` or the first line of stdin.`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd := os.Args[1]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	username := fs.String("username", "", "username (3-64 characters)")
	_ = fs.Parse(os.Args[2:])
	if *username == "" {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO", "text")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel, "text")

	password, err := readPassword()
	if err != nil {
		logging.Fatal("read password failed", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	users := service.NewUserService(repository.NewPgUserRepository(pool))

	switch cmd {
	case "add":
		u, err := users.Register(ctx, model.UserInput{Username: *username, Password: password})
		if err != nil {
			pool.Close()
			logging.Fatal("add user failed", "username", *username, "error", err)
		}
		slog.Info("user created", "id", u.ID, "username", u.Username)
	case "verify":
		u, err := users.Verify(ctx, *username, password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			pool.Close()
			logging.Fatal("credentials rejected", "username", *username)
		}
		if err != nil {
			pool.Close()
			logging.Fatal("verify failed", "username", *username, "error", err)
		}
		slog.Info("credentials ok", "id", u.ID, "username", u.Username)
	default:
		usage()
	}
}

func readPassword() (string, error) {
	if p := os.Getenv(passwordEnvVar); p != "" {
		return p, nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password on stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
