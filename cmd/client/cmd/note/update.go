// cmd/client/cmd/note/update.go
package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateContent string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Обновить заметку",
	Long:  `Перезаписывает заголовок и текст заметки. Доступно только владельцу.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		n, err := app.UpdateNote(cmd.Context(), args[0], updateTitle, updateContent)
		if err != nil {
			return fmt.Errorf("ошибка обновления заметки: %w", err)
		}

		color.Green("Заметка обновлена")
		fmt.Printf("ID: %s\n", n.NoteID)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "новый заголовок")
	UpdateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "новый текст")
	_ = UpdateCmd.MarkFlagRequired("title")
	_ = UpdateCmd.MarkFlagRequired("content")
}
