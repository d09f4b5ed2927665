package note

type Note struct {
	ID      int    // внутренний id, наружу не отдаётся
	UUID    string // внешний идентификатор, неизменяемый
	Title   string
	Content string
}

// Membership — строка связи пользователь–заметка. Ровно одна строка с
// IsOwner=true создаётся вместе с заметкой; шаринг добавляет строки с
// IsOwner=false. Видимость заметки — существование строки, право на
// изменение и удаление — строка с IsOwner=true.
type Membership struct {
	UserID  int
	NoteID  int
	IsOwner bool
}
