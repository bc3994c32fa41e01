package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/webcraftstudio/webcraft/internal/repository"
)

const defaultTelegramAPI = "https://api.telegram.org"

// Telegram rejects texts over 4096 UTF-16 units after entity parsing. The
// per-field caps below keep the whole message under that with room for labels.
const (
	maxTelegramMessageBody = 2500
	maxTelegramField       = 255
	truncationMark         = "…"
)

// TelegramService forwards new leads to a Telegram chat
type TelegramService struct {
	botToken string
	chatID   string
	apiURL   string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service. apiURL may be empty to
// use the public Bot API.
func NewTelegramService(botToken, chatID, apiURL string) *TelegramService {
	if apiURL == "" {
		apiURL = defaultTelegramAPI
	}
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		apiURL:   strings.TrimRight(apiURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a bot token and chat are configured
func (s *TelegramService) Enabled() bool {
	return s != nil && s.botToken != "" && s.chatID != ""
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// FormatLead renders a lead as a Telegram HTML message
func FormatLead(lead *repository.Lead) string {
	field := func(v string) string { return html.EscapeString(clip(v, maxTelegramField)) }

	var b strings.Builder
	b.WriteString("🆕 <b>New Contact Form Submission</b>\n\n")
	fmt.Fprintf(&b, "<b>Name:</b> %s\n", field(lead.Name))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", field(lead.Email))
	if lead.Company != "" {
		fmt.Fprintf(&b, "<b>Company:</b> %s\n", field(lead.Company))
	}
	if lead.Budget != "" {
		fmt.Fprintf(&b, "<b>Budget:</b> %s\n", field(lead.Budget))
	}
	fmt.Fprintf(&b, "<b>Message:</b>\n%s", html.EscapeString(clip(lead.Message, maxTelegramMessageBody)))
	if lead.IPAddress != "" || lead.Referrer != "" {
		b.WriteString("\n\n<i>")
		if lead.IPAddress != "" {
			fmt.Fprintf(&b, "IP: %s", field(lead.IPAddress))
		}
		if lead.Referrer != "" {
			if lead.IPAddress != "" {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "From: %s", field(lead.Referrer))
		}
		b.WriteString("</i>")
	}
	return b.String()
}

// clip cuts s to at most max UTF-16 units, marking the cut with an ellipsis
func clip(s string, max int) string {
	if utf16Len(s) <= max {
		return s
	}
	n := 0
	for i, r := range s {
		n += utf16.RuneLen(r)
		if n > max-1 {
			return s[:i] + truncationMark
		}
	}
	return s
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// SendContactMessage sends a lead to Telegram
func (s *TelegramService) SendContactMessage(ctx context.Context, lead *repository.Lead) error {
	if !s.Enabled() {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      FormatLead(lead),
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}
