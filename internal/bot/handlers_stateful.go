package bot

import (
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/recipes"
)

// handleDraftMessage feeds an operator message into the active draft
// according to its stage. Validation failures leave the draft untouched
// and re-prompt for the same step.
func (b *TelegramBot) handleDraftMessage(message *tgbotapi.Message, draft *recipes.Draft) {
	lang := b.getLang()
	msg := tgbotapi.NewMessage(message.Chat.ID, "")

	switch draft.Stage {
	case recipes.StageAwaitingTeaser:
		text := message.Text
		if message.Caption != "" {
			text = message.Caption
		}
		if err := draft.SubmitTeaser(text, mediaFromMessage(message)); err != nil {
			msg.Text = b.validationMessage(err, "teaser_too_long", "teaser_empty")
			break
		}
		msg.Text = b.localizer.GetMessage(lang, "ask_full_text")

	case recipes.StageAwaitingFullText:
		if err := draft.SubmitFullText(message.Text); err != nil {
			msg.Text = b.validationMessage(err, "full_text_too_long", "full_text_empty")
			break
		}
		b.sendPreview(message.Chat.ID, draft)
		return

	case recipes.StageAwaitingConfirmation:
		// Free text while the preview buttons are up; nothing to capture.
		return
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send draft step response: %v", err)
	}
}

func (b *TelegramBot) validationMessage(err error, tooLongKey, emptyKey string) string {
	lang := b.getLang()
	var vErr *recipes.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Reason == recipes.ReasonTooLong {
			return b.localizer.GetMessagef(lang, tooLongKey, vErr.Length, recipes.MaxTextLen)
		}
		return b.localizer.GetMessage(lang, emptyKey)
	}
	log.Printf("Unexpected draft transition error: %v", err)
	return b.localizer.GetMessage(lang, "step_out_of_order")
}

// mediaFromMessage extracts the attachment, if any. Telegram offers
// photos in several resolutions; the last entry is the largest.
func mediaFromMessage(message *tgbotapi.Message) *recipes.MediaRef {
	if len(message.Photo) > 0 {
		return &recipes.MediaRef{
			Kind:   recipes.MediaPhoto,
			FileID: message.Photo[len(message.Photo)-1].FileID,
		}
	}
	if message.Video != nil {
		return &recipes.MediaRef{
			Kind:   recipes.MediaVideo,
			FileID: message.Video.FileID,
		}
	}
	return nil
}
