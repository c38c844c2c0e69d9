package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTelegramNotifier_NotifyManagers(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		sent telegramMessage
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(config.Telegram{BotToken: "token", ChatID: "-100", APIURL: srv.URL})
	n.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	err := n.NotifyManagers(context.Background(), domain.ManagerAlert{
		Name:    "Анна <script>",
		Phone:   "+79990000000",
		Service: "Бухгалтерия",
		Comment: "a & b",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if path != "/bottoken/sendMessage" {
		t.Fatalf("unexpected path %s", path)
	}
	if sent.ChatID != "-100" || sent.ParseMode != "HTML" || !sent.DisableWebPagePreview {
		t.Fatalf("unexpected message %+v", sent)
	}
	for _, want := range []string{"Анна &lt;script&gt;", "a &amp; b", "10.03.2026, 12:00:00", `href="tel:+79990000000"`} {
		if !strings.Contains(sent.Text, want) {
			t.Fatalf("expected %q in:\n%s", want, sent.Text)
		}
	}
	if strings.Contains(sent.Text, "Email:") {
		t.Fatalf("expected no email line without an email")
	}
}

func TestTelegramNotifier_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		n := NewTelegramNotifier(config.Telegram{})
		err := n.NotifyManagers(context.Background(), domain.ManagerAlert{})
		if !errors.Is(err, domain.ErrCollaboratorDisabled) {
			t.Fatalf("expected ErrCollaboratorDisabled, got %v", err)
		}
	})

	t.Run("api refuses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}))
		defer srv.Close()

		n := NewTelegramNotifier(config.Telegram{BotToken: "token", ChatID: "1", APIURL: srv.URL})
		err := n.NotifyManagers(context.Background(), domain.ManagerAlert{Name: "Анна"})
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected api description in error, got %v", err)
		}
	})

	t.Run("http error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"ok":false}`))
		}))
		defer srv.Close()

		n := NewTelegramNotifier(config.Telegram{BotToken: "token", ChatID: "1", APIURL: srv.URL})
		err := n.NotifyManagers(context.Background(), domain.ManagerAlert{Name: "Анна"})
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected StatusError 401, got %v", err)
		}
	})
}

func TestAmoCRMClient_CreateDealFromOrder(t *testing.T) {
	var (
		mu       sync.Mutex
		calls    []string
		lead     []amoLead
		noteText string
		auth     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		auth = r.Header.Get("Authorization")

		switch r.Method + " " + r.URL.Path {
		case "GET /api/v4/contacts":
			// amoCRM отвечает 204 без тела, если ничего не найдено
			w.WriteHeader(http.StatusNoContent)
		case "POST /api/v4/contacts":
			_, _ = w.Write([]byte(`{"_embedded":{"contacts":[{"id":5}]}}`))
		case "POST /api/v4/leads":
			_ = json.NewDecoder(r.Body).Decode(&lead)
			_, _ = w.Write([]byte(`{"_embedded":{"leads":[{"id":4242}]}}`))
		case "POST /api/v4/leads/4242/notes":
			var notes []amoNote
			_ = json.NewDecoder(r.Body).Decode(&notes)
			if len(notes) == 1 {
				noteText = notes[0].Params.Text
			}
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewAmoCRMClient(config.AmoCRM{AccessToken: "secret", BaseURL: srv.URL})
	deal, err := c.CreateDealFromOrder(context.Background(), domain.CRMDealRequest{
		UserName:       "Анна",
		UserEmail:      "anna@example.com",
		ServiceName:    "Комплексное обслуживание",
		Description:    "Нужна консультация",
		MonthlyAmount:  decimal.NewNullDecimal(decimal.NewFromInt(15000)),
		OneTimeAmount:  decimal.NewNullDecimal(decimal.NewFromInt(5000)),
		CalculatorData: []byte(`{"businessParams":{"businessType":"ooo","taxSystem":"usn6","employeesCount":"1-5","operationsCount":"0-20"}}`),
	})
	if err != nil {
		t.Fatalf("create deal: %v", err)
	}
	if deal.DealID != 4242 || deal.ContactID != 5 {
		t.Fatalf("unexpected deal %+v", deal)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 4 {
		t.Fatalf("expected search, contact, lead and note calls, got %v", calls)
	}
	if auth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", auth)
	}
	if len(lead) != 1 || lead[0].Price != 20000 || lead[0].Name != "Заявка: Комплексное обслуживание" {
		t.Fatalf("unexpected lead %+v", lead)
	}
	if lead[0].Embedded == nil || lead[0].Embedded.Contacts[0].ID != 5 {
		t.Fatalf("expected lead linked to contact 5")
	}
	for _, want := range []string{"Нужна консультация", "Тип бизнеса: ooo", "Сотрудников: 1-5", "Ежемесячно: 15 000 ₽", "Разово: 5 000 ₽"} {
		if !strings.Contains(noteText, want) {
			t.Fatalf("expected %q in note:\n%s", want, noteText)
		}
	}
}

func TestAmoCRMClient_ReusesFoundContact(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()

		switch r.Method + " " + r.URL.Path {
		case "GET /api/v4/contacts":
			if r.URL.Query().Get("query") != "+79990000000" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"_embedded":{"contacts":[{"id":11}]}}`))
		case "POST /api/v4/leads":
			_, _ = w.Write([]byte(`{"_embedded":{"leads":[{"id":12}]}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewAmoCRMClient(config.AmoCRM{AccessToken: "secret", BaseURL: srv.URL})
	deal, err := c.CreateDealFromOrder(context.Background(), domain.CRMDealRequest{
		UserName:    "Иван",
		UserPhone:   "+79990000000",
		ServiceName: "Регистрация ООО",
	})
	if err != nil {
		t.Fatalf("create deal: %v", err)
	}
	if deal.ContactID != 11 || deal.DealID != 12 {
		t.Fatalf("unexpected deal %+v", deal)
	}

	mu.Lock()
	defer mu.Unlock()
	// без описания и калькулятора заметка не создаётся
	if len(calls) != 2 {
		t.Fatalf("expected only search and lead calls, got %v", calls)
	}
}

func TestAmoCRMClient_Disabled(t *testing.T) {
	c := NewAmoCRMClient(config.AmoCRM{Subdomain: "rahimaconsulting"})
	_, err := c.CreateDealFromOrder(context.Background(), domain.CRMDealRequest{})
	if !errors.Is(err, domain.ErrCollaboratorDisabled) {
		t.Fatalf("expected ErrCollaboratorDisabled, got %v", err)
	}
}

func TestPlainText(t *testing.T) {
	in := "<html>\n  <body>\n    <p>Здравствуйте, <b>Анна</b>!</p>\n\n    <p>Ваш расчёт готов</p>\n  </body>\n</html>"
	want := "Здравствуйте, Анна!\nВаш расчёт готов"
	if got := PlainText(in); got != want {
		t.Fatalf("PlainText() = %q, want %q", got, want)
	}
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	s := NewSMTPSender(config.SMTP{Host: "smtp.example.com", Port: 2525, User: "robot@example.com"})

	if _, err := s.buildMessage(domain.Email{To: "not an address", Subject: "x"}); err == nil {
		t.Fatalf("expected invalid recipient to fail")
	}
	if _, err := s.buildMessage(domain.Email{To: "anna@example.com", ToName: "Анна", Subject: "Тема", HTML: "<p>Привет</p>"}); err != nil {
		t.Fatalf("build: %v", err)
	}

	disabled := NewSMTPSender(config.SMTP{Host: "smtp.example.com"})
	if err := disabled.Send(context.Background(), domain.Email{To: "anna@example.com"}); !errors.Is(err, domain.ErrCollaboratorDisabled) {
		t.Fatalf("expected ErrCollaboratorDisabled, got %v", err)
	}
}
