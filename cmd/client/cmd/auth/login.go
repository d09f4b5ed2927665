// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var (
	rememberMe bool
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему Notekeeper",
	Long: `Аутентификация на сервере Notekeeper.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		// Запрашиваем email
		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		// Запрашиваем пароль
		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		token, err := app.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		// Сохраняем токен
		if rememberMe {
			if err := app.SaveToken(token); err != nil {
				return fmt.Errorf("ошибка сохранения токена: %w", err)
			}
		}

		fmt.Println()
		color.Green("Вход выполнен успешно!")
		return nil
	},
}

func init() {
	LoginCmd.Flags().BoolVarP(&rememberMe, "remember", "r", true, "запомнить меня (сохранить токен)")
}
