package publish

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-bot/internal/recipes"
)

type sentPost struct {
	chatID  int64
	text    string
	media   *recipes.MediaRef
	control Control
}

type controlUpdate struct {
	chatID    int64
	messageID int
	control   Control
}

// fakeChannel records calls and assigns sequential message IDs.
type fakeChannel struct {
	nextMessageID int
	sent          []sentPost
	updates       []controlUpdate
	sendErr       error
	updateErr     error
}

func (f *fakeChannel) SendPost(chatID int64, text string, media *recipes.MediaRef, control Control) (PostHandle, error) {
	if f.sendErr != nil {
		return PostHandle{}, f.sendErr
	}
	f.nextMessageID++
	f.sent = append(f.sent, sentPost{chatID: chatID, text: text, media: media, control: control})
	return PostHandle{ChatID: chatID, MessageID: f.nextMessageID}, nil
}

func (f *fakeChannel) UpdateControl(chatID int64, messageID int, control Control) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, controlUpdate{chatID: chatID, messageID: messageID, control: control})
	return nil
}

type registryPut struct {
	messageID int
	chatID    int64
	fullText  string
}

type fakeRegistry struct {
	puts   []registryPut
	putErr error
}

func (f *fakeRegistry) PutPublishedPost(messageID int, chatID int64, fullText string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts = append(f.puts, registryPut{messageID: messageID, chatID: chatID, fullText: fullText})
	return nil
}

func confirmedDraft(t *testing.T, teaser, fullText string) *recipes.Draft {
	t.Helper()
	d := recipes.NewDraft()
	require.NoError(t, d.SubmitTeaser(teaser, &recipes.MediaRef{Kind: recipes.MediaPhoto, FileID: "file-1"}))
	require.NoError(t, d.SubmitFullText(fullText))
	return d
}

func TestPublishHappyPath(t *testing.T) {
	channel := &fakeChannel{}
	registry := &fakeRegistry{}
	p := NewPublisher(channel, registry, -100123, "Show recipe")

	d := confirmedDraft(t, "Soup", "Boil water, add vegetables")
	handle, err := p.Publish(d)
	require.NoError(t, err)
	assert.Equal(t, int64(-100123), handle.ChatID)
	assert.Equal(t, 1, handle.MessageID)

	require.Len(t, channel.sent, 1)
	assert.Equal(t, "Soup", channel.sent[0].text)
	assert.Equal(t, "file-1", channel.sent[0].media.FileID)
	assert.Equal(t, "show_recipe:0", channel.sent[0].control.Data, "pre-send button must not carry a usable ID")

	require.Len(t, registry.puts, 1)
	assert.Equal(t, registryPut{messageID: 1, chatID: -100123, fullText: "Boil water, add vegetables"}, registry.puts[0])

	require.Len(t, channel.updates, 1)
	assert.Equal(t, "show_recipe:1", channel.updates[0].control.Data)
	assert.Equal(t, "Show recipe", channel.updates[0].control.Label)
}

func TestPublishIncompleteDraft(t *testing.T) {
	p := NewPublisher(&fakeChannel{}, &fakeRegistry{}, -100123, "Show recipe")

	d := recipes.NewDraft()
	_, err := p.Publish(d)
	assert.ErrorIs(t, err, ErrIncompleteDraft)

	require.NoError(t, d.SubmitTeaser("Soup", nil))
	_, err = p.Publish(d)
	assert.ErrorIs(t, err, ErrIncompleteDraft)
}

func TestPublishSendFailure(t *testing.T) {
	sendErr := errors.New("telegram: 502")
	channel := &fakeChannel{sendErr: sendErr}
	registry := &fakeRegistry{}
	p := NewPublisher(channel, registry, -100123, "Show recipe")

	_, err := p.Publish(confirmedDraft(t, "Soup", "Boil water"))
	var pubErr *Error
	require.ErrorAs(t, err, &pubErr)
	assert.Equal(t, PhaseSend, pubErr.Phase)
	assert.ErrorIs(t, err, sendErr)
	assert.Empty(t, registry.puts, "nothing may be registered before a successful send")
}

func TestPublishRegisterFailureSkipsControlUpdate(t *testing.T) {
	channel := &fakeChannel{}
	registry := &fakeRegistry{putErr: errors.New("disk full")}
	p := NewPublisher(channel, registry, -100123, "Show recipe")

	handle, err := p.Publish(confirmedDraft(t, "Soup", "Boil water"))
	var pubErr *Error
	require.ErrorAs(t, err, &pubErr)
	assert.Equal(t, PhaseRegister, pubErr.Phase)
	assert.Equal(t, 1, handle.MessageID)
	assert.Empty(t, channel.updates, "button must stay a placeholder until the text is registered")
}

func TestPublishControlUpdateFailure(t *testing.T) {
	channel := &fakeChannel{updateErr: errors.New("message not found")}
	registry := &fakeRegistry{}
	p := NewPublisher(channel, registry, -100123, "Show recipe")

	handle, err := p.Publish(confirmedDraft(t, "Soup", "Boil water"))
	var pubErr *Error
	require.ErrorAs(t, err, &pubErr)
	assert.Equal(t, PhaseControlUpdate, pubErr.Phase)
	assert.Len(t, registry.puts, 1, "content stays registered even when the patch fails")
	assert.Equal(t, 1, handle.MessageID)
}

func TestTwoPublishesYieldDistinctIDs(t *testing.T) {
	channel := &fakeChannel{}
	registry := &fakeRegistry{}
	p := NewPublisher(channel, registry, -100123, "Show recipe")

	h1, err := p.Publish(confirmedDraft(t, "Soup", "Boil water"))
	require.NoError(t, err)
	h2, err := p.Publish(confirmedDraft(t, "Stew", "Simmer slowly"))
	require.NoError(t, err)

	assert.NotEqual(t, h1.MessageID, h2.MessageID)
	require.Len(t, registry.puts, 2)
	assert.Equal(t, "Boil water", registry.puts[0].fullText)
	assert.Equal(t, "Simmer slowly", registry.puts[1].fullText)
}
