// cmd/client/cmd/init.go
package cmd

import (
	"notekeeper/cmd/client/cmd/auth"
	"notekeeper/cmd/client/cmd/note"
)

func init() {
	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.SignupCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)

	// Добавляем команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.GetCmd)
	note.NoteCmd.AddCommand(note.UpdateCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)
	note.NoteCmd.AddCommand(note.SearchCmd)
	note.NoteCmd.AddCommand(note.ShareCmd)
}
