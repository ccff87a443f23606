package bot

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/publish"
	"recipe-bot/internal/recipes"
	"recipe-bot/internal/storage"
)

// telegramClient adapts the Bot API to the narrow interfaces the
// publisher and the membership verifier consume.
type telegramClient struct {
	api *tgbotapi.BotAPI
}

func controlMarkup(control publish.Control) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(control.Label, control.Data),
		),
	)
}

func (c *telegramClient) SendPost(chatID int64, text string, media *recipes.MediaRef, control publish.Control) (publish.PostHandle, error) {
	markup := controlMarkup(control)

	var sent tgbotapi.Message
	var err error
	switch {
	case media == nil:
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = markup
		sent, err = c.api.Send(msg)
	case media.Kind == recipes.MediaPhoto:
		photoMsg := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(media.FileID))
		photoMsg.Caption = text
		photoMsg.ReplyMarkup = markup
		sent, err = c.api.Send(photoMsg)
	case media.Kind == recipes.MediaVideo:
		videoMsg := tgbotapi.NewVideo(chatID, tgbotapi.FileID(media.FileID))
		videoMsg.Caption = text
		videoMsg.ReplyMarkup = markup
		sent, err = c.api.Send(videoMsg)
	default:
		return publish.PostHandle{}, fmt.Errorf("unsupported media kind %q", media.Kind)
	}
	if err != nil {
		return publish.PostHandle{}, err
	}
	return publish.PostHandle{ChatID: sent.Chat.ID, MessageID: sent.MessageID}, nil
}

func (c *telegramClient) UpdateControl(chatID int64, messageID int, control publish.Control) error {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, controlMarkup(control))
	_, err := c.api.Request(edit)
	return err
}

func (c *telegramClient) GetChatMemberStatus(chatID int64, userID int64) (string, error) {
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return "", err
	}
	return member.Status, nil
}

// registryReader exposes the storage layer to the disclosure gate,
// translating the not-found sentinel into a plain miss.
type registryReader struct {
	store *storage.Storage
}

func (r *registryReader) GetFullText(messageID int) (string, bool, error) {
	post, err := r.store.GetPublishedPost(messageID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return post.FullText, true, nil
}
