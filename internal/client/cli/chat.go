package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
)

func (a *App) chatScreen(ctx context.Context) {
	// the poller keeps the list fresh while the user sits on this screen
	a.chatListPoller.Start(ctx, "")
	defer a.chatListPoller.Stop()

	chats, err := a.svc.Chat.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load chats:", api.Detail(err))
		return
	}
	a.mu.Lock()
	a.chats = chats
	a.mu.Unlock()
	a.printChats(chats)

	for {
		cmd, err := promptLineFn(a.reader, "[o]pen <n>, [r]andom partner, [d]elete <n>, [l]ist, [b]ack", a.out)
		if err != nil {
			return
		}
		switch cmd {
		case "b", "back", "":
			return
		case "l", "list":
			chats = a.currentChats()
			a.printChats(chats)
		case "r", "random":
			chat, err := a.svc.Chat.StartRandom(ctx)
			if err != nil {
				fmt.Fprintln(a.out, "Could not join the queue:", api.Detail(err))
				continue
			}
			if chat.WaitingForPartner() {
				fmt.Fprintln(a.out, "Waiting for a partner... check back in a moment.")
				continue
			}
			a.openChat(ctx, chat)
			chats = a.currentChats()
		default:
			n, target, ok := indexedCommand(cmd, len(chats))
			if !ok {
				fmt.Fprintln(a.out, "Unknown choice:", cmd)
				continue
			}
			switch target {
			case "o":
				a.openChat(ctx, &chats[n])
				chats = a.currentChats()
			case "d":
				yes, err := confirm(a.reader, "Delete this conversation?", a.out)
				if err != nil || !yes {
					continue
				}
				if err := a.svc.Chat.Delete(ctx, chats[n].ID); err != nil {
					fmt.Fprintln(a.out, "Could not delete:", api.Detail(err))
					continue
				}
				chats = append(chats[:n], chats[n+1:]...)
				a.printChats(chats)
			}
		}
	}
}

func (a *App) printChats(chats []models.Chat) {
	fmt.Fprintln(a.out, "--- Chats ---")
	if len(chats) == 0 {
		fmt.Fprintln(a.out, "No conversations yet. Try 'r' to meet a random partner.")
		return
	}
	self := a.session.Get()
	for i, c := range chats {
		name := "???"
		if c.WaitingForPartner() {
			name = "(waiting for a partner)"
		} else if other := c.OtherParticipant(self.ID); other != nil {
			name = other.Username
		}
		last := ""
		if c.LastMessage != nil {
			last = c.LastMessage.Content
			if len(last) > 40 {
				last = last[:40] + "..."
			}
		}
		fmt.Fprintf(a.out, "%2d. %s  %s\n", i+1, name, last)
	}
}

// openChat is the conversation view. The message poller is retargeted to
// this chat; opening another conversation tears the previous loop down.
func (a *App) openChat(ctx context.Context, chat *models.Chat) {
	a.messagePoller.Retarget(ctx, chat.ID)
	defer a.messagePoller.Stop()

	msgs, err := a.svc.Chat.Messages(ctx, chat.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load messages:", api.Detail(err))
		return
	}
	a.setMessages(msgs)
	a.printMessages()

	fmt.Fprintln(a.out, "Type a message, or /refresh, /block, /report, /delete, /back")
	for {
		line, err := promptLineFn(a.reader, "", a.out)
		if err != nil {
			return
		}
		switch line {
		case "/back", "":
			return
		case "/refresh":
			a.printMessages()
		case "/block":
			other := chat.OtherParticipant(a.session.Get().ID)
			if other == nil {
				fmt.Fprintln(a.out, "No partner in this conversation yet.")
				continue
			}
			if err := a.svc.Chat.Block(ctx, other.ID); err != nil {
				fmt.Fprintln(a.out, "Could not block:", api.Detail(err))
				continue
			}
			fmt.Fprintln(a.out, "User blocked.")
			return
		case "/report":
			other := chat.OtherParticipant(a.session.Get().ID)
			if other == nil {
				fmt.Fprintln(a.out, "No partner in this conversation yet.")
				continue
			}
			reason, err := promptLineFn(a.reader, "Reason", a.out)
			if err != nil || reason == "" {
				continue
			}
			if err := a.svc.Chat.Report(ctx, other.ID, reason); err != nil {
				fmt.Fprintln(a.out, "Could not report:", api.Detail(err))
				continue
			}
			fmt.Fprintln(a.out, "Reported. Our moderators will take a look.")
		case "/delete":
			yes, err := confirm(a.reader, "Delete this conversation?", a.out)
			if err != nil || !yes {
				continue
			}
			if err := a.svc.Chat.Delete(ctx, chat.ID); err != nil {
				fmt.Fprintln(a.out, "Could not delete:", api.Detail(err))
				continue
			}
			return
		default:
			a.sendMessage(ctx, chat.ID, line)
		}
	}
}

func (a *App) printMessages() {
	self := a.session.Get()
	for _, m := range a.currentMessages() {
		switch {
		case m.System():
			fmt.Fprintf(a.out, "  -- %s --\n", m.Content)
		case m.SenderID == self.ID:
			fmt.Fprintf(a.out, "  you: %s\n", m.Content)
		default:
			fmt.Fprintf(a.out, "  them: %s\n", m.Content)
		}
	}
}

// sendMessage appends the message optimistically, then reconciles the list
// with the server. On failure the optimistic append is rolled back and the
// typed text echoed so the user can retry without retyping.
func (a *App) sendMessage(ctx context.Context, chatID, content string) {
	self := a.session.Get()
	previous := a.currentMessages()
	optimistic := make([]models.Message, len(previous), len(previous)+1)
	copy(optimistic, previous)
	optimistic = append(optimistic, models.Message{
		ID:        "pending-" + uuid.NewString(),
		ChatID:    chatID,
		SenderID:  self.ID,
		Content:   content,
		CreatedAt: time.Now(),
	})

	err := a.messageField.Mutate(ctx, previous, optimistic,
		func(v []models.Message) { a.setMessages(v) },
		func(ctx context.Context) ([]models.Message, error) {
			if _, err := a.svc.Chat.Send(ctx, chatID, content); err != nil {
				return nil, err
			}
			return a.svc.Chat.Messages(ctx, chatID)
		})
	if err != nil {
		if errors.Is(err, sync.ErrMutationInFlight) {
			fmt.Fprintln(a.out, "Still sending the previous message...")
			return
		}
		fmt.Fprintln(a.out, "Could not send:", api.Detail(err))
		fmt.Fprintf(a.out, "Your message was: %s\n", content)
		return
	}
	a.printMessages()
}
