package telegram

import (
	"errors"

	"idx-scalping-sniper/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrMissingCredentials is returned when the bot token or chat id is not configured.
var ErrMissingCredentials = errors.New("telegram bot token and chat id are required")

// Notifier defines the interface for a Telegram notifier.
type Notifier interface {
	SendMessage(text string) error
}

// client is an implementation of Notifier.
type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a new Telegram notifier client.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if botToken == "" || chatID == 0 {
		return nil, ErrMissingCredentials
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &client{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendMessage sends a message to the configured Telegram chat.
func (c *client) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	_, err := c.bot.Send(msg)
	return err
}

type logNotifier struct {
	log *logger.Logger
}

// NewLogNotifier writes messages to the log instead of a chat.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) SendMessage(text string) error {
	n.log.Info("Telegram disabled, digest follows", logger.StringField("message", text))
	return nil
}

// SendAll sends every message, stopping at the first failure.
func SendAll(n Notifier, messages []string) error {
	for _, m := range messages {
		if err := n.SendMessage(m); err != nil {
			return err
		}
	}
	return nil
}
