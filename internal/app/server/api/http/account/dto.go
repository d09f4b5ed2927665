package account

// Ограничения на email и длину пароля проверяет доменный валидатор,
// чтобы отказ уходил клиенту как 400 {error} с точным сообщением,
// а не как 422 от валидации схемы.
type credentialsRequest struct {
	Email    string `json:"email" doc:"Email пользователя"`
	Password string `json:"password" doc:"Пароль (6-100 символов)"`
}

type signupInput struct {
	Body credentialsRequest
}

type signupOutput struct {
	Body TokenResponse
}

type loginInput struct {
	Body credentialsRequest
}

type loginOutput struct {
	Body TokenResponse
}

type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
