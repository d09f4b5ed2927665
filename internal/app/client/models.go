package client

// NoteView — заметка в том виде, в котором ее отдает сервер.
type NoteView struct {
	NoteID  string `json:"noteId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type noteUpdateRequest struct {
	NoteID  string `json:"noteId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type shareRequest struct {
	RecipientID string `json:"recipientId"`
	NoteID      string `json:"noteId"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
