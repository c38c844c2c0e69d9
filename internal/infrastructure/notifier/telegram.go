package notifier

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

var moscow = time.FixedZone("MSK", 3*60*60)

type TelegramNotifier struct {
	cfg    config.Telegram
	client *http.Client
	now    func() time.Time
}

func NewTelegramNotifier(cfg config.Telegram) *TelegramNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.telegram.org"
	}
	return &TelegramNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

func (t *TelegramNotifier) Enabled() bool {
	return t.cfg.BotToken != "" && t.cfg.ChatID != ""
}

func (t *TelegramNotifier) NotifyManagers(ctx context.Context, alert domain.ManagerAlert) error {
	if !t.Enabled() {
		return domain.ErrCollaboratorDisabled
	}

	msg := telegramMessage{
		ChatID:                t.cfg.ChatID,
		Text:                  t.formatAlert(alert),
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.cfg.APIURL, "/"), t.cfg.BotToken)

	var resp telegramResponse
	if err := doJSON(ctx, t.client, http.MethodPost, url, nil, msg, &resp); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("telegram sendMessage: %s", resp.Description)
	}
	return nil
}

func (t *TelegramNotifier) formatAlert(a domain.ManagerAlert) string {
	service := a.Service
	if service == "" {
		service = "Заказ звонка"
	}

	var b strings.Builder
	b.WriteString("🔔 <b>Новая заявка с сайта</b>\n\n")
	fmt.Fprintf(&b, "📋 <b>Тип заявки:</b> %s\n", html.EscapeString(service))
	fmt.Fprintf(&b, "👤 <b>Имя:</b> %s\n", html.EscapeString(a.Name))
	fmt.Fprintf(&b, "📞 <b>Телефон:</b> <code>%s</code>", html.EscapeString(a.Phone))
	if a.Email != "" {
		fmt.Fprintf(&b, "\n📧 <b>Email:</b> %s", html.EscapeString(a.Email))
	}
	if a.Comment != "" {
		fmt.Fprintf(&b, "\n\n💬 <b>Комментарий:</b>\n<pre>%s</pre>", html.EscapeString(a.Comment))
	}
	fmt.Fprintf(&b, "\n\n⏰ <b>Время:</b> %s", t.now().In(moscow).Format("02.01.2006, 15:04:05"))
	if a.Phone != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"tel:%s\">📞 Позвонить клиенту</a>", html.EscapeString(a.Phone))
	}
	return b.String()
}
