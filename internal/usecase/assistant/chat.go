package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Wuubzi/healthunity-client/internal/api"
)

// Sender identifica quién habla en la transcripción.
type Sender string

const (
	SenderUser Sender = "user"
	SenderEva  Sender = "eva"
)

// Message es una entrada de la transcripción local del chat.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// EmailSource entrega el email de la sesión activa; es el campo from
// de cada pregunta a Eva.
type EmailSource interface {
	Email() (string, error)
}

// Chat mantiene la conversación con Eva. La transcripción vive solo en
// memoria: el asistente razona en el backend.
type Chat struct {
	api   *api.Client
	email EmailSource

	mu       sync.Mutex
	messages []Message
}

func NewChat(client *api.Client, email EmailSource) *Chat {
	return &Chat{api: client, email: email}
}

// Greet abre la conversación igual que la app al montar la pantalla.
func (c *Chat) Greet(ctx context.Context) (Message, error) {
	return c.send(ctx, "Hola eva", false)
}

// Ask registra el mensaje del usuario y espera la respuesta de Eva.
func (c *Chat) Ask(ctx context.Context, text string) (Message, error) {
	return c.send(ctx, text, true)
}

func (c *Chat) send(ctx context.Context, text string, record bool) (Message, error) {
	from, err := c.email.Email()
	if err != nil {
		return Message{}, err
	}

	if record {
		c.append(Message{
			ID:        uuid.NewString(),
			Text:      text,
			Sender:    SenderUser,
			Timestamp: time.Now(),
		})
	}

	resp, err := c.api.AskEva(ctx, from, text)
	if err != nil {
		return Message{}, err
	}

	reply := Message{
		ID:        uuid.NewString(),
		Text:      resp.Content,
		Sender:    SenderEva,
		Timestamp: time.Now(),
	}
	c.append(reply)
	return reply, nil
}

func (c *Chat) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// Transcript devuelve una copia de la conversación.
func (c *Chat) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
