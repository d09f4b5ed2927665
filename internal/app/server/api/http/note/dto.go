package note

type noteResponse struct {
	NoteID  string `json:"noteId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type listOutput struct {
	Body []noteResponse
}

type getInput struct {
	ID string `path:"id" doc:"Внешний идентификатор заметки"`
}

type getOutput struct {
	Body noteResponse
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title   string `json:"title" doc:"Заголовок"`
	Content string `json:"content" doc:"Текст заметки"`
}

type createOutput struct {
	Body noteResponse
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	NoteID  string `json:"noteId" doc:"Внешний идентификатор заметки"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateOutput struct {
	Body noteResponse
}

type deleteInput struct {
	ID string `path:"id" doc:"Внешний идентификатор заметки"`
}

type deleteOutput struct {
	Body messageResponse
}

type searchInput struct {
	Query string `query:"q" doc:"Подстрока для поиска по заголовку и тексту"`
}

type searchOutput struct {
	Body []noteResponse
}

type shareInput struct {
	Body shareRequest
}

type shareRequest struct {
	RecipientID string `json:"recipientId" doc:"Внешний идентификатор получателя"`
	NoteID      string `json:"noteId" doc:"Внешний идентификатор заметки"`
}

type shareOutput struct {
	Body messageResponse
}
