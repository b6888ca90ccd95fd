package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/shubhanshu5320/medium-blog-backend/internal/db"
	"github.com/shubhanshu5320/medium-blog-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// MakeUser 互動式創建作者帳號
func MakeUser(ctx context.Context, userStore store.UserStore) error {
	reader := bufio.NewReader(os.Stdin)

	// 1. 輸入 name
	fmt.Print("Enter display name: ")
	name, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	name = strings.TrimSpace(name)

	if name == "" {
		return errors.New("name cannot be empty")
	}

	// 2. 輸入 username
	fmt.Print("Enter username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	username = strings.TrimSpace(username)

	// 驗證 username
	if username == "" {
		return errors.New("username cannot be empty")
	}
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}

	// 檢查 username 是否已存在
	_, err = userStore.GetUserByUsername(ctx, username)
	if err == nil {
		return fmt.Errorf("username '%s' already exists", username)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	// 3. 輸入 password（隱藏輸入）
	fmt.Print("Enter password: ")
	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	password := string(passwordBytes)

	// 驗證 password
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	// 4. 確認 password
	fmt.Print("Confirm password: ")
	confirmPasswordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	fmt.Println()

	if password != string(confirmPasswordBytes) {
		return errors.New("passwords do not match")
	}

	// 5. 建立使用者
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := userStore.CreateUser(ctx, db.CreateUserParams{
		Name:     name,
		Username: username,
		Password: string(hash),
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Println("User created successfully!")
	fmt.Printf("   ID: %d\n", user.ID)
	fmt.Printf("   Name: %s\n", user.Name)
	fmt.Printf("   Username: %s\n", user.Username)
	fmt.Printf("   Created at: %v\n", user.CreatedAt.Time)

	return nil
}
