package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/note",
		Summary:     "Список заметок пользователя",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-get",
		Method:      http.MethodGet,
		Path:        "/note/{id}",
		Summary:     "Получить заметку",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-create",
		Method:      http.MethodPost,
		Path:        "/note",
		Summary:     "Создать заметку",
		Description: "Создает заметку и владельческое членство автора в одной транзакции.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPut,
		Path:        "/note",
		Summary:     "Обновить заметку",
		Description: "Перезаписывает заголовок и текст. Доступно только владельцу.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/note/{id}",
		Summary:     "Удалить заметку",
		Description: "Удаляет заметку вместе со всеми членствами. Доступно только владельцу.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Поиск по заметкам",
		Description: "Регистронезависимый поиск подстроки по заголовку и тексту доступных заметок.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) shareOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-share",
		Method:      http.MethodPost,
		Path:        "/share",
		Summary:     "Поделиться заметкой",
		Description: "Выдает получателю читательское членство. Повторная выдача — no-op.",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
