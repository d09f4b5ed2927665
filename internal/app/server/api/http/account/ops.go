package account

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signupOp() huma.Operation {
	return huma.Operation{
		OperationID: "account-signup",
		Method:      http.MethodPost,
		Path:        "/signup",
		Summary:     "Регистрация пользователя",
		Tags:        []string{"account"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "account-login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Авторизация пользователя",
		Tags:        []string{"account"},
		Middlewares: h.middleware,
	}
}
