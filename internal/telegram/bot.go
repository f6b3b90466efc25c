package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobhunt-automation/internal/models"
)

// Bot pushes accepted jobs to a single chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

func escapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// escapeURL escapes what MarkdownV2 forbids inside a link target
func escapeURL(u string) string {
	return strings.NewReplacer("\\", "\\\\", ")", "\\)").Replace(u)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func formatJob(rec models.ResultRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎯 *%s*\n", escapeMarkdown(rec.JobTitle))
	fmt.Fprintf(&sb, "🏢 %s\n", escapeMarkdown(orNA(rec.Company)))
	fmt.Fprintf(&sb, "📍 %s\n", escapeMarkdown(orNA(rec.Location)))
	if rec.DatePosted != "" {
		fmt.Fprintf(&sb, "📅 %s\n", escapeMarkdown(rec.DatePosted))
	}
	if rec.Rationale != "" {
		fmt.Fprintf(&sb, "🤖 %s\n", escapeMarkdown(rec.Rationale))
	}
	fmt.Fprintf(&sb, "🔗 [View Job](%s)", escapeURL(rec.JobURL))
	return sb.String()
}

func (b *Bot) SendJob(rec models.ResultRecord) error {
	_, err := b.api.Send(b.jobMessage(rec))
	return err
}

func (b *Bot) jobMessage(rec models.ResultRecord) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(b.chatID, formatJob(rec))
	msg.ParseMode = "MarkdownV2"
	msg.DisableWebPagePreview = true
	if rec.JobURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("🔗 View Job", rec.JobURL),
			),
		)
	}
	return msg
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
