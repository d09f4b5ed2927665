// cmd/client/cmd/note/create.go
package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createTitle   string
	createContent string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заметку",
	Long:  `Создает новую заметку. Автор становится ее владельцем.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if createTitle == "" || createContent == "" {
			return fmt.Errorf("необходимо указать --title и --content")
		}

		n, err := app.CreateNote(cmd.Context(), createTitle, createContent)
		if err != nil {
			return fmt.Errorf("ошибка создания заметки: %w", err)
		}

		color.Green("Заметка создана")
		fmt.Printf("ID: %s\n", n.NoteID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок заметки")
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "текст заметки")
	_ = CreateCmd.MarkFlagRequired("title")
	_ = CreateCmd.MarkFlagRequired("content")
}
