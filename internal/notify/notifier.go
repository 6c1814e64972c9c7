// Package notify отправляет уведомления в telegram-канал.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Notifier отправляет одно текстовое сообщение в заранее настроенный канал.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// TelegramBot - Notifier поверх Telegram Bot API (метод sendMessage).
type TelegramBot struct {
	client  *http.Client
	apiBase string
	token   string
	chatID  int64
}

// Option настраивает TelegramBot.
type Option func(*TelegramBot)

// WithAPIBase заменяет базовый URL Telegram API (для тестов).
func WithAPIBase(base string) Option {
	return func(b *TelegramBot) { b.apiBase = strings.TrimRight(base, "/") }
}

// WithHTTPClient заменяет HTTP-клиент.
func WithHTTPClient(client *http.Client) Option {
	return func(b *TelegramBot) { b.client = client }
}

// NewTelegramBot создаёт TelegramBot для канала chatID.
func NewTelegramBot(token string, chatID int64, opts ...Option) *TelegramBot {
	b := &TelegramBot{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiBase: defaultAPIBase,
		token:   token,
		chatID:  chatID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// apiResponse - минимальная часть ответа Bot API.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage отправляет text в канал с parse_mode=HTML.
func (b *TelegramBot) SendMessage(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", b.apiBase, b.token)

	form := url.Values{}
	form.Set("chat_id", strconv.FormatInt(b.chatID, 10))
	form.Set("text", text)
	form.Set("parse_mode", "HTML")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("read telegram response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if !apiResp.OK {
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, apiResp.Description)
	}

	return nil
}

// MentionLink возвращает HTML-ссылку, упоминающую пользователя tgUID под именем alias.
func MentionLink(alias string, tgUID int64) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, tgUID, html.EscapeString(alias))
}

// Noop - Notifier-заглушка, используется когда бот не сконфигурирован.
type Noop struct{}

// SendMessage ничего не делает.
func (Noop) SendMessage(context.Context, string) error { return nil }
