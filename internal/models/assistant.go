package models

// AskRequest es el body de eva/ask.
type AskRequest struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

type AskResponse struct {
	Content string `json:"content"`
}
