package models

import "time"

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser   ChatSender = "user"
	SenderAI     ChatSender = "ai"
	SenderSystem ChatSender = "system"
)

// ChatMessage is one line of the local chat transcript.
type ChatMessage struct {
	ID      string     `json:"id"`
	Sender  ChatSender `json:"sender"`
	Content string     `json:"content"`
	SentAt  time.Time  `json:"sent_at"`
}
