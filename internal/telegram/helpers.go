package telegram

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Andyyyyyy/bats-stats/internal/service"
	"github.com/Andyyyyyy/bats-stats/internal/storage"
)

func sendMessage(bot MessageSender, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// playersKeyboard renders one button per player, payload "player_<name>".
func playersKeyboard(players []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range players {
		button := tgbotapi.NewInlineKeyboardButtonData(name, "player_"+name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// typesKeyboard renders one button per highlight type, payload "type_<TYPE>".
func typesKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range storage.AllTypes {
		button := tgbotapi.NewInlineKeyboardButtonData(string(t), "type_"+string(t))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// draftSummary echoes the draft's fields back to the admin after each step,
// with "-" standing in for anything still unset.
func draftSummary(d service.Draft) string {
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}

	value := "-"
	if d.Value != nil {
		value = strconv.Itoa(*d.Value)
	}
	comment := "-"
	if d.Comment != nil && *d.Comment != "" {
		comment = *d.Comment
	}

	return fmt.Sprintf("Player: %s\nHighlight: %s\nValue: %s\nComment: %s",
		dash(d.Player), dash(string(d.Type)), value, comment)
}
