// cmd/client/cmd/note/share.go
package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var shareRecipient string

var ShareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Поделиться заметкой",
	Long:  `Выдает другому пользователю доступ на чтение заметки.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if err := app.ShareNote(cmd.Context(), shareRecipient, args[0]); err != nil {
			return fmt.Errorf("ошибка шаринга заметки: %w", err)
		}

		color.Green("Доступ к заметке выдан")
		return nil
	},
}

func init() {
	ShareCmd.Flags().StringVarP(&shareRecipient, "recipient", "r", "", "идентификатор пользователя-получателя")
	_ = ShareCmd.MarkFlagRequired("recipient")
}
