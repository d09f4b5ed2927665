package types

// ContextKey — ключ для значений в контексте команд
type ContextKey string

// ClientAppKey — ключ, под которым в контексте лежит *client.App
const ClientAppKey ContextKey = "app"
