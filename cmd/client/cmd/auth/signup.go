// cmd/client/cmd/auth/signup.go
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

var SignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Зарегистрироваться в Notekeeper",
	Long: `Регистрация новой учетной записи на сервере Notekeeper.

Пароль должен содержать от 6 до 100 символов.
После регистрации токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Регистрация ===")
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

		fmt.Print("Повторите пароль: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("пароли не совпадают")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		token, err := app.Signup(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		if err := app.SaveToken(token); err != nil {
			return fmt.Errorf("ошибка сохранения токена: %w", err)
		}

		fmt.Println()
		color.Green("Регистрация выполнена успешно!")
		return nil
	},
}
