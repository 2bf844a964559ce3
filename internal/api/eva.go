package api

import (
	"context"
	"net/http"

	"github.com/Wuubzi/healthunity-client/internal/models"
)

// AskEva envía un mensaje al asistente. La inferencia vive en el
// backend; aquí solo viaja texto.
func (c *Client) AskEva(ctx context.Context, from, content string) (*models.AskResponse, error) {
	req := models.AskRequest{From: from, Content: content}
	var out models.AskResponse
	if err := c.do(ctx, "eva.ask", http.MethodPost, "/api/v1/eva/ask", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
