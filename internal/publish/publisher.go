package publish

import (
	"errors"
	"fmt"
	"log"

	"recipe-bot/internal/recipes"
)

// ErrIncompleteDraft rejects a publish attempt on a draft that has not
// reached confirmation with both fields captured.
var ErrIncompleteDraft = errors.New("publish: draft is not ready to publish")

type Phase string

const (
	PhaseSend          Phase = "send"
	PhaseRegister      Phase = "register"
	PhaseControlUpdate Phase = "control_update"
)

// Error reports which phase of the publish protocol failed. A send
// failure leaves the draft intact for retry; later phases leave a
// partially published post that needs operator attention.
type Error struct {
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("publish %s failed: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Control is one inline button attached to a channel post. Data is the
// callback payload the transport delivers back on a click.
type Control struct {
	Label string
	Data  string
}

// PostHandle identifies a sent channel post. The message ID is the
// durable key the reveal flow correlates on.
type PostHandle struct {
	ChatID    int64
	MessageID int
}

// ChannelClient is the slice of the messaging platform the publisher
// needs: send a post with a button, and patch the button afterwards.
type ChannelClient interface {
	SendPost(chatID int64, text string, media *recipes.MediaRef, control Control) (PostHandle, error)
	UpdateControl(chatID int64, messageID int, control Control) error
}

// Registry records the gated text for a published post.
type Registry interface {
	PutPublishedPost(messageID int, chatID int64, fullText string) error
}

type Publisher struct {
	client      ChannelClient
	registry    Registry
	channelID   int64
	revealLabel string
}

func NewPublisher(client ChannelClient, registry Registry, channelID int64, revealLabel string) *Publisher {
	return &Publisher{
		client:      client,
		registry:    registry,
		channelID:   channelID,
		revealLabel: revealLabel,
	}
}

// RevealCallbackData builds the callback payload carried by a working
// reveal button.
func RevealCallbackData(messageID int) string {
	return fmt.Sprintf("show_recipe:%d", messageID)
}

// Publish commits a confirmed draft to the channel.
//
// The channel assigns the durable message ID only once the post is sent,
// so the protocol is two-phase: send with a placeholder button, register
// the full text under the resulting ID, then patch the button to carry
// it. The registry write must land before the patch — a live button
// pointing at an unregistered ID would hand users a lookup miss.
func (p *Publisher) Publish(d *recipes.Draft) (PostHandle, error) {
	if !d.Complete() {
		return PostHandle{}, ErrIncompleteDraft
	}

	placeholder := Control{Label: p.revealLabel, Data: RevealCallbackData(0)}
	handle, err := p.client.SendPost(p.channelID, d.Teaser, d.Media, placeholder)
	if err != nil {
		return PostHandle{}, &Error{Phase: PhaseSend, Err: err}
	}

	if err := p.registry.PutPublishedPost(handle.MessageID, handle.ChatID, d.FullText); err != nil {
		log.Printf("CRITICAL: post %d sent but could not be registered: %v", handle.MessageID, err)
		return handle, &Error{Phase: PhaseRegister, Err: err}
	}

	control := Control{Label: p.revealLabel, Data: RevealCallbackData(handle.MessageID)}
	if err := p.client.UpdateControl(handle.ChatID, handle.MessageID, control); err != nil {
		return handle, &Error{Phase: PhaseControlUpdate, Err: err}
	}

	log.Printf("Published post %d to channel %d", handle.MessageID, handle.ChatID)
	return handle, nil
}
