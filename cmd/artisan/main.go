package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shubhanshu5320/medium-blog-backend/cmd/artisan/commands"
	"github.com/shubhanshu5320/medium-blog-backend/internal/db"
	"github.com/shubhanshu5320/medium-blog-backend/internal/store"
	"github.com/shubhanshu5320/medium-blog-backend/pkg/database"
)

func run() error {
	if len(os.Args) < 2 {
		printHelp()
		return nil
	}

	// 初始化資料庫連線
	dbpool, err := database.NewPool(context.Background())
	if err != nil {
		return err
	}
	defer dbpool.Close()

	// 初始化 Queries 和 Stores
	queries := db.New(dbpool)
	userStore := store.NewUserStore(queries)

	// 路由命令
	ctx := context.Background()
	command := os.Args[1]

	switch command {
	case "make:user":
		return commands.MakeUser(ctx, userStore)
	case "make:token":
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			return fmt.Errorf("JWT_SECRET environment variable is not set")
		}
		return commands.MakeToken(ctx, userStore, jwtSecret, os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Usage: go run cmd/artisan/main.go [command]")
	fmt.Println("Available commands:")
	fmt.Println("  make:user              Create a new author")
	fmt.Println("  make:token <user-id>   Mint an API token for an author")
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
