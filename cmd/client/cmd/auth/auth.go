package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с учетной записью
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление учетной записью",
	Long:  `Регистрация и вход в систему.`,
}
