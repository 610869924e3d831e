package models

import "time"

// ChatType values as reported by the server.
const (
	ChatTypeDirect      = "direct"
	ChatTypeRandom      = "random"
	ChatTypeRandomQueue = "random_queue"
)

type ChatParticipant struct {
	User User `json:"user"`
}

type Chat struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Participants []ChatParticipant `json:"participants"`
	LastMessage  *Message          `json:"last_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// OtherParticipant returns the participant that is not selfID, or nil for a
// queue chat still waiting on a partner.
func (c *Chat) OtherParticipant(selfID string) *User {
	for i := range c.Participants {
		if c.Participants[i].User.ID != selfID {
			return &c.Participants[i].User
		}
	}
	return nil
}

// WaitingForPartner reports whether the chat is an unmatched random queue slot.
func (c *Chat) WaitingForPartner() bool {
	return c.Type == ChatTypeRandomQueue && len(c.Participants) == 1
}

type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id,omitempty"` // empty means a system message
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// System reports whether the message was generated by the platform rather
// than a participant.
func (m *Message) System() bool {
	return m.SenderID == ""
}
