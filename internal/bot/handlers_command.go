package bot

import (
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *TelegramBot) handleCommand(message *tgbotapi.Message) {
	lang := b.getLang()
	msg := tgbotapi.NewMessage(message.Chat.ID, "")
	cmd := message.Command()
	protectedCommands := map[string]bool{"admin": true, "cancel": true, "setadmin": true}
	if protectedCommands[cmd] && !b.isOperator(message.From.ID) {
		msg.Text = b.localizer.GetMessage(lang, "permission_denied")
		b.api.Send(msg)
		return
	}
	switch cmd {
	case "start":
		msg.Text = b.localizer.GetMessage(lang, "welcome_message")
	case "help":
		msg.Text = b.localizer.GetMessage(lang, "help_message")
	case "admin":
		b.sendAdminMenu(message.Chat.ID)
		return
	case "cancel":
		b.handleCancel(message.From.ID, message.Chat.ID)
		return
	case "setadmin":
		b.handleSetAdminCommand(message)
		return
	default:
		return
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send command response: %v", err)
	}
}

// handleCancel discards an active draft and returns the operator to the
// admin menu. Shared by the /cancel command and the discard button.
func (b *TelegramBot) handleCancel(userID int64, chatID int64) {
	lang := b.getLang()
	if !b.drafts.Clear(userID) {
		msg := tgbotapi.NewMessage(chatID, b.localizer.GetMessage(lang, "no_active_draft"))
		b.api.Send(msg)
		return
	}
	msg := tgbotapi.NewMessage(chatID, b.localizer.GetMessage(lang, "cancelled"))
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send cancel confirmation: %v", err)
	}
	b.sendAdminMenu(chatID)
}

// handleSetAdminCommand grants or revokes operator rights at runtime.
// Only operators from the static configuration may manage the list, and
// they cannot be demoted themselves.
func (b *TelegramBot) handleSetAdminCommand(message *tgbotapi.Message) {
	lang := b.getLang()
	msg := tgbotapi.NewMessage(message.Chat.ID, "")
	if !b.cfg.IsOperator(message.From.ID) {
		msg.Text = b.localizer.GetMessage(lang, "permission_denied")
		b.api.Send(msg)
		return
	}
	parts := strings.Fields(message.CommandArguments())
	if len(parts) != 2 {
		msg.Text = b.localizer.GetMessage(lang, "setadmin_usage")
		b.api.Send(msg)
		return
	}
	targetID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		msg.Text = b.localizer.GetMessage(lang, "setadmin_usage")
		b.api.Send(msg)
		return
	}
	isAdmin, err := strconv.ParseBool(parts[1])
	if err != nil {
		msg.Text = b.localizer.GetMessage(lang, "setadmin_usage")
		b.api.Send(msg)
		return
	}
	if b.cfg.IsOperator(targetID) && !isAdmin {
		msg.Text = b.localizer.GetMessage(lang, "setadmin_self_fail")
		b.api.Send(msg)
		return
	}
	if err := b.storage.SetUserAdmin(targetID, isAdmin); err != nil {
		log.Printf("Failed to set admin status for user %d: %v", targetID, err)
		return
	}
	msg.Text = b.localizer.GetMessagef(lang, "setadmin_success", targetID)
	b.api.Send(msg)
}
