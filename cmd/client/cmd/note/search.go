// cmd/client/cmd/note/search.go
package note

import (
	"fmt"

	"github.com/spf13/cobra"
)

var SearchCmd = &cobra.Command{
	Use:   "search <запрос>",
	Short: "Поиск по заметкам",
	Long:  `Регистронезависимый поиск подстроки по заголовку и тексту доступных заметок.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		notes, err := app.SearchNotes(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		return printNotesSimple(notes)
	},
}
