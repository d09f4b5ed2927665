// cmd/client/cmd/note/list.go
package note

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long:  `Просмотр всех заметок, к которым у пользователя есть доступ.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		notes, err := app.ListNotes(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		// Выводим результат
		switch listFormat {
		case "json":
			return printNotesJSON(notes)
		case "table":
			return printNotesTable(notes)
		default:
			return printNotesSimple(notes)
		}
	},
}

func printNotesSimple(notes []client.NoteView) error {
	if len(notes) == 0 {
		fmt.Println("Заметки не найдены")
		return nil
	}

	fmt.Printf("Найдено заметок: %d\n\n", len(notes))

	for i, n := range notes {
		fmt.Printf("%d. %s\n", i+1, n.Title)
		fmt.Printf("   ID: %s\n", n.NoteID)
		fmt.Println()
	}

	return nil
}

func printNotesJSON(notes []client.NoteView) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(notes)
}

func printNotesTable(notes []client.NoteView) error {
	if len(notes) == 0 {
		fmt.Println("Заметки не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tЗАГОЛОВОК\tТЕКСТ")
	for _, n := range notes {
		content := n.Content
		if len([]rune(content)) > 40 {
			content = string([]rune(content)[:40]) + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.NoteID, n.Title, content)
	}
	return w.Flush()
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода: simple, table, json")
}
