package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shubhanshu5320/medium-blog-backend/internal/auth"
	"github.com/shubhanshu5320/medium-blog-backend/internal/store"
)

// MakeToken 為既有作者簽發 API token
// The blog API has no login endpoint; tokens for development and support
// come from this command.
func MakeToken(ctx context.Context, userStore store.UserStore, jwtSecret string, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: make:token <user-id>")
	}

	userID, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("user id must be numeric: %w", err)
	}

	// 確認使用者存在
	user, err := userStore.GetUser(ctx, int32(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %d does not exist", userID)
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// The id claim is a string; handlers coerce it back to a number.
	token, err := auth.GenerateToken(strconv.FormatInt(int64(user.ID), 10), jwtSecret)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("Token for %s (id %d), valid for %s:\n", user.Username, user.ID, auth.JWTExpiration)
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Send it as the raw Authorization header value (no Bearer prefix).")

	return nil
}
