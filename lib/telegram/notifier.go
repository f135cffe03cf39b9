package telegram

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/timekeep-simple/config"
)

// Notifier delivers registration approval notifications to the admin
// channel. The concrete implementation talks to Telegram; tests substitute
// a fake.
type Notifier interface {
	// SendApprovalRequest sends a message with approve/deny links for a
	// queued registration
	SendApprovalRequest(username, email, approveURL, denyURL string) error
	// SendMessage sends a plain notification
	SendMessage(text string) error
}

// BotNotifier sends notifications through a Telegram bot to the configured
// admin chat
type BotNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewBotNotifier creates a notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_ADMIN_CHAT_ID
func NewBotNotifier() (*BotNotifier, error) {
	token := config.GetEnv("TELEGRAM_BOT_TOKEN", "")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN not set in environment")
	}

	chatID, err := strconv.ParseInt(config.GetEnv("TELEGRAM_ADMIN_CHAT_ID", ""), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID is not a valid chat id: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %v", err)
	}

	log.Printf("✅ Telegram notifier authorized as %s", bot.Self.UserName)

	return &BotNotifier{bot: bot, chatID: chatID}, nil
}

// SendApprovalRequest sends the approval request with an inline keyboard
// linking to the approve and deny endpoints
func (n *BotNotifier) SendApprovalRequest(username, email, approveURL, denyURL string) error {
	text := fmt.Sprintf(
		"🔔 *New Registration Request*\n\n"+
			"*Username:* %s\n"+
			"*Email:* %s\n\n"+
			"Please approve or deny this registration:",
		username, email,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("✅ Approve", approveURL),
			tgbotapi.NewInlineKeyboardButtonURL("❌ Deny", denyURL),
		),
	)

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send Telegram approval request: %v", err)
	}
	return nil
}

// SendMessage sends a plain Markdown notification to the admin chat
func (n *BotNotifier) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send Telegram message: %v", err)
	}
	return nil
}
