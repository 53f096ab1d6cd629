package menu

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const backLabel = "🔙 Back to Main Menu"

// MainMenuKeyboard builds the main menu: one topic button per row, plus the
// external community link as the last row.
func MainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(Topics)+1)
	for _, t := range Topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(catalog[t].Label, string(t)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL(CommunityLabel, CommunityURL),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BackKeyboard builds the single "back to main menu" button shown under
// topic detail views.
func BackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(backLabel, MainMenuKey),
		),
	)
}

// Markup resolves a KeyboardKind to its keyboard.
func Markup(k KeyboardKind) tgbotapi.InlineKeyboardMarkup {
	if k == KeyboardMain {
		return MainMenuKeyboard()
	}
	return BackKeyboard()
}
