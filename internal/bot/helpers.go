package bot

import "log"

// isOperator checks the static operator list from the environment first,
// then the runtime-managed admin table.
func (b *TelegramBot) isOperator(userID int64) bool {
	if b.cfg.IsOperator(userID) {
		return true
	}
	isAdmin, err := b.storage.IsUserAdmin(userID)
	if err != nil {
		log.Printf("Could not check admin status for user %d: %v", userID, err)
		return false
	}
	return isAdmin
}

func (b *TelegramBot) getLang() string {
	return b.cfg.DefaultLanguage
}
