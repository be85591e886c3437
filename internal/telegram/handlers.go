package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Andyyyyyy/bats-stats/internal/service"
	"github.com/Andyyyyyy/bats-stats/internal/storage"
)

// MessageSender is the outbound Telegram surface the handler needs.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot     MessageSender
	Service service.Highlighter

	adminID int64
	logger  *slog.Logger
}

func NewHandler(bot MessageSender, svc service.Highlighter, adminID int64, logger *slog.Logger) *Handler {
	return &Handler{
		Bot:     bot,
		Service: svc,
		adminID: adminID,
		logger:  logger,
	}
}

// IsAuthorized reports whether userID is the configured admin. Everything
// else is dropped without a reply, so strangers cannot probe the bot.
func (h *Handler) IsAuthorized(userID int64) bool {
	return userID == h.adminID
}

// HandleUpdate dispatches one incoming update. Commands win over free
// text; button clicks carry their selection in the callback payload.
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	from := update.SentFrom()
	if from == nil || !h.IsAuthorized(from.ID) {
		return
	}

	switch {
	case update.Message != nil:
		msg := update.Message
		switch msg.Command() {
		case "start":
			h.HandleStart(msg)
		case "highlights":
			h.HandleHighlights(msg)
		case "addname":
			h.HandleAddName(msg)
		case "done":
			h.HandleDone(msg)
		default:
			if msg.Text != "" {
				h.HandleText(msg)
			}
		}
	case update.CallbackQuery != nil:
		h.HandleCallback(update.CallbackQuery)
	}
}

// HandleStart - /start
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "🎯 Darts Highlight Bot is ready."))
}

// HandleHighlights - /highlights starts a fresh draft and offers the known
// players as buttons.
func (h *Handler) HandleHighlights(msg *tgbotapi.Message) {
	players := h.Service.Begin()
	if len(players) == 0 {
		sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "No players yet. Use /addname Andy."))
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Choose player:")
	reply.ReplyMarkup = playersKeyboard(players)
	sendMessage(h.Bot, reply)
}

// HandleAddName - /addname <name>
func (h *Handler) HandleAddName(msg *tgbotapi.Message) {
	name := strings.TrimSpace(msg.CommandArguments())

	if err := h.Service.AddPlayer(name); err != nil {
		sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "Usage: /addname Andy"))
		return
	}
	sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Player %q added.", name)))
}

// HandleDone - /done saves the draft with whatever fields are set.
func (h *Handler) HandleDone(msg *tgbotapi.Message) {
	res, err := h.Service.Finish(context.Background())

	sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, draftSummary(res.Draft)))
	if err != nil {
		sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Failed to save: %v", err)))
		return
	}
	sendMessage(h.Bot, tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("Saved. (id: %d)", res.ID)))
}

// HandleCallback routes button clicks during player and type selection.
func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	// Answer the callback so the loading icon on the button disappears.
	if _, err := h.Bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		h.logger.Error("failed to answer callback", "error", err)
	}

	data := callback.Data
	switch {
	case strings.HasPrefix(data, "player_"):
		h.handlePlayerSelection(callback, strings.TrimPrefix(data, "player_"))
	case strings.HasPrefix(data, "type_"):
		h.handleTypeSelection(callback, storage.HighlightType(strings.TrimPrefix(data, "type_")))
	}
}

// handlePlayerSelection records the chosen player and swaps the keyboard
// for the highlight types, editing the selection message in place.
func (h *Handler) handlePlayerSelection(callback *tgbotapi.CallbackQuery, name string) {
	h.Service.ChoosePlayer(name)

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		"Choose highlight type:",
		typesKeyboard(),
	)
	sendMessage(h.Bot, edit)
}

// handleTypeSelection records the chosen type and prompts for the next
// field: a score for types that carry one, otherwise the comment.
func (h *Handler) handleTypeSelection(callback *tgbotapi.CallbackQuery, t storage.HighlightType) {
	if !t.Known() {
		// Stale or forged button payload.
		return
	}

	next, _ := h.Service.ChooseType(t)

	chatID := callback.Message.Chat.ID
	if next == service.StateAwaitingValue {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Insert Value"))
		return
	}
	sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Insert Comment or /done"))
}

// HandleText feeds free text into the current conversation step.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	res, err := h.Service.SubmitText(context.Background(), msg.Text)
	chatID := msg.Chat.ID

	switch {
	case errors.Is(err, service.ErrNoActiveDraft):
		// Nothing being drafted; ignore chatter.
		return
	case errors.Is(err, service.ErrInvalidValue):
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "value is invalid, try again."))
		return
	case errors.Is(err, service.ErrCommentTooLong):
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "comment too long (>200 characters). try again."))
		return
	case errors.Is(err, service.ErrInvalidDate):
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Date must be in format YYYY-MM-DD"))
		return
	case err != nil:
		// The date was valid but the save failed; the draft survives so
		// /done can retry it.
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, draftSummary(res.Draft)))
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("Failed to save: %v", err)))
		return
	}

	sendMessage(h.Bot, tgbotapi.NewMessage(chatID, draftSummary(res.Draft)))

	if res.Saved {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("Saved. (id: %d)", res.ID)))
		return
	}

	switch res.State {
	case service.StateAwaitingComment:
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Insert Comment or /done"))
	case service.StateAwaitingDate:
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Insert Date (YYYY-MM-DD) or /done"))
	}
}
