package bot

import (
	"errors"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/gate"
	"recipe-bot/internal/publish"
	"recipe-bot/internal/recipes"
)

func (b *TelegramBot) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	lang := b.getLang()
	callbackData := strings.SplitN(callback.Data, ":", 2)
	action := callbackData[0]
	var data string
	if len(callbackData) > 1 {
		data = callbackData[1]
	}

	// Reveal clicks come from the channel audience; everything else is
	// the operator flow.
	if action == actionShowRecipe {
		b.handleReveal(callback, data)
		return
	}

	userID := callback.From.ID
	if !b.isOperator(userID) {
		b.api.Request(tgbotapi.NewCallback(callback.ID, b.localizer.GetMessage(lang, "permission_denied")))
		return
	}

	chatID := callback.Message.Chat.ID
	switch action {
	case actionAddRecipe:
		b.drafts.Start(userID)
		msg := tgbotapi.NewMessage(chatID, b.localizer.GetMessage(lang, "ask_teaser"))
		b.api.Send(msg)
	case actionPublish:
		b.handlePublish(userID, chatID)
	case actionEditTeaser:
		b.handleRequestEdit(userID, chatID, recipes.EditTeaser, "ask_teaser_again")
	case actionEditFull:
		b.handleRequestEdit(userID, chatID, recipes.EditFullText, "ask_full_text_again")
	case actionCancel:
		b.handleCancel(userID, chatID)
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Failed to answer callback query: %v", err)
	}
}

// handleReveal answers an audience click with an ephemeral alert visible
// only to the requester. Content is never posted into the channel.
func (b *TelegramBot) handleReveal(callback *tgbotapi.CallbackQuery, data string) {
	lang := b.getLang()

	var text string
	messageID, err := strconv.Atoi(data)
	if err != nil || messageID == 0 {
		text = b.localizer.GetMessage(lang, "reveal_not_found")
	} else {
		result := b.gate.Reveal(messageID, callback.From.ID)
		switch result.Outcome {
		case gate.OutcomeRevealed:
			text = result.Text
		case gate.OutcomeRefused:
			text = b.localizer.GetMessage(lang, "reveal_subscribe_first")
		default:
			text = b.localizer.GetMessage(lang, "reveal_not_found")
		}
	}

	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callback.ID, text)); err != nil {
		log.Printf("Failed to answer reveal callback: %v", err)
	}
}

func (b *TelegramBot) handleRequestEdit(userID int64, chatID int64, target recipes.EditTarget, promptKey string) {
	lang := b.getLang()
	msg := tgbotapi.NewMessage(chatID, "")

	draft, err := b.drafts.Get(userID)
	if err != nil {
		msg.Text = b.localizer.GetMessage(lang, "no_active_draft")
		b.api.Send(msg)
		return
	}
	if err := draft.RequestEdit(target); err != nil {
		log.Printf("Edit request rejected for user %d: %v", userID, err)
		msg.Text = b.localizer.GetMessage(lang, "step_out_of_order")
		b.api.Send(msg)
		return
	}
	msg.Text = b.localizer.GetMessage(lang, promptKey)
	b.api.Send(msg)
}

func (b *TelegramBot) handlePublish(userID int64, chatID int64) {
	lang := b.getLang()
	msg := tgbotapi.NewMessage(chatID, "")

	draft, err := b.drafts.Get(userID)
	if err != nil {
		msg.Text = b.localizer.GetMessage(lang, "no_active_draft")
		b.api.Send(msg)
		return
	}

	_, err = b.publisher.Publish(draft)
	switch {
	case err == nil:
		b.drafts.Clear(userID)
		msg.Text = b.localizer.GetMessage(lang, "publish_success")
	case errors.Is(err, publish.ErrIncompleteDraft):
		msg.Text = b.localizer.GetMessage(lang, "publish_not_ready")
	default:
		var pubErr *publish.Error
		if errors.As(err, &pubErr) && pubErr.Phase == publish.PhaseSend {
			// Nothing reached the channel; the draft stays for a retry.
			log.Printf("Publish send failed for user %d: %v", userID, err)
			msg.Text = b.localizer.GetMessagef(lang, "publish_send_failed", pubErr.Err)
		} else {
			// The post is in the channel but its button is stale. A
			// re-publish would duplicate the post, so the draft is done.
			log.Printf("Publish left a degraded post for user %d: %v", userID, err)
			b.drafts.Clear(userID)
			msg.Text = b.localizer.GetMessagef(lang, "publish_degraded", err)
		}
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send publish response: %v", err)
	}
}
