// cmd/client/cmd/note/get.go
package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Получить заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		n, err := app.GetNote(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения заметки: %w", err)
		}

		color.Cyan("%s", n.Title)
		fmt.Println(n.Content)
		fmt.Printf("\nID: %s\n", n.NoteID)
		return nil
	},
}
