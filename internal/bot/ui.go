package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/recipes"
)

var actionLabelKeys = map[recipes.Action]string{
	recipes.ActionPublish:      "btn_publish",
	recipes.ActionEditTeaser:   "btn_edit_teaser",
	recipes.ActionEditFullText: "btn_edit_full",
	recipes.ActionCancel:       "btn_cancel",
}

var actionCallbacks = map[recipes.Action]string{
	recipes.ActionPublish:      actionPublish,
	recipes.ActionEditTeaser:   actionEditTeaser,
	recipes.ActionEditFullText: actionEditFull,
	recipes.ActionCancel:       actionCancel,
}

func (b *TelegramBot) sendAdminMenu(chatID int64) {
	lang := b.getLang()
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.localizer.GetMessage(lang, "btn_add_recipe"), actionAddRecipe),
		),
	)
	msg := tgbotapi.NewMessage(chatID, b.localizer.GetMessage(lang, "admin_menu_title"))
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send admin menu: %v", err)
	}
}

// sendPreview shows the operator what the channel post will look like,
// with the confirmation controls attached.
func (b *TelegramBot) sendPreview(chatID int64, draft *recipes.Draft) {
	lang := b.getLang()
	preview := recipes.Render(draft)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, actionRow := range preview.Actions {
		var row []tgbotapi.InlineKeyboardButton
		for _, action := range actionRow {
			label := b.localizer.GetMessage(lang, actionLabelKeys[action])
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, actionCallbacks[action]))
		}
		rows = append(rows, row)
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	var err error
	switch {
	case preview.Media == nil:
		msg := tgbotapi.NewMessage(chatID, preview.Teaser)
		msg.ReplyMarkup = keyboard
		_, err = b.api.Send(msg)
	case preview.Media.Kind == recipes.MediaPhoto:
		photoMsg := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(preview.Media.FileID))
		photoMsg.Caption = preview.Teaser
		photoMsg.ReplyMarkup = keyboard
		_, err = b.api.Send(photoMsg)
	default:
		videoMsg := tgbotapi.NewVideo(chatID, tgbotapi.FileID(preview.Media.FileID))
		videoMsg.Caption = preview.Teaser
		videoMsg.ReplyMarkup = keyboard
		_, err = b.api.Send(videoMsg)
	}
	if err != nil {
		log.Printf("Failed to send draft preview: %v", err)
	}
}
