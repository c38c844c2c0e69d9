package templates

import (
	"strings"
	"testing"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]decimal.Decimal{
		"999":       decimal.NewFromInt(999),
		"15 000":    decimal.NewFromInt(15000),
		"1 234 567": decimal.NewFromInt(1234567),
		"14 000":    decimal.RequireFromString("13999.6"),
	}
	for want, in := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestSeries(t *testing.T) {
	r := MustNewRenderer("https://rahima-consulting.ru/")

	for tpl := range series {
		t.Run(string(tpl), func(t *testing.T) {
			out, err := r.Series(tpl, SeriesData{Name: "Анна", CalculationID: "abc123"})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out.Subject == "" || out.HTML == "" || out.Text == "" {
				t.Fatalf("expected subject and both bodies")
			}
			if !strings.Contains(out.Text, "Здравствуйте, Анна!") {
				t.Fatalf("expected greeting in text body:\n%s", out.Text)
			}
		})
	}

	t.Run("discount block", func(t *testing.T) {
		out, err := r.Series(domain.TemplateFollowUpDay3, SeriesData{TotalMonthly: decimal.NewNullDecimal(decimal.NewFromInt(15000))})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		for _, want := range []string{"Обычная цена: 15 000 ₽/мес", "Со скидкой: 13 500 ₽/мес", "Экономия: 1 500 ₽!"} {
			if !strings.Contains(out.Text, want) {
				t.Fatalf("expected %q in:\n%s", want, out.Text)
			}
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		if _, err := r.Series("WEEKLY_DIGEST", SeriesData{}); err == nil {
			t.Fatalf("expected error for unknown template")
		}
	})
}

func TestOrderCreated(t *testing.T) {
	r := MustNewRenderer("https://rahima-consulting.ru")

	out, err := r.OrderCreated(OrderCreatedData{
		ServiceName:   "Бухгалтерия",
		OrderNumber:   "A1B2C3D4",
		MonthlyAmount: decimal.NewNullDecimal(decimal.NewFromInt(15000)),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Subject != orderCreatedSubject {
		t.Fatalf("unexpected subject %q", out.Subject)
	}
	if !strings.HasPrefix(out.Text, "Здравствуйте!") {
		t.Fatalf("expected anonymous greeting:\n%s", out.Text)
	}
	if !strings.Contains(out.Text, "Ежемесячно: 15 000 ₽") || strings.Contains(out.Text, "Разово") {
		t.Fatalf("expected only the monthly amount:\n%s", out.Text)
	}
	if !strings.Contains(out.Text, "https://rahima-consulting.ru/dashboard/orders") {
		t.Fatalf("expected dashboard link:\n%s", out.Text)
	}
}

func TestStatusChanged_EscapesHTML(t *testing.T) {
	r := MustNewRenderer("https://rahima-consulting.ru")

	out, err := r.StatusChanged(StatusChangedData{
		Name:        "Анна",
		ServiceName: "Отчетность",
		Status:      domain.StatusCompleted,
		Comment:     "<b>готово</b>",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.Subject, "выполнена") {
		t.Fatalf("unexpected subject %q", out.Subject)
	}
	if strings.Contains(out.HTML, "<b>готово</b>") {
		t.Fatalf("expected comment to be escaped in HTML")
	}
	if !strings.Contains(out.Text, "Комментарий: <b>готово</b>") {
		t.Fatalf("expected raw comment in text body:\n%s", out.Text)
	}
}

func TestCalculationLink(t *testing.T) {
	r := MustNewRenderer("https://rahima-consulting.ru")

	out, err := r.CalculationLink(CalculationLinkData{CalculationID: "V1StGXR8_Z5jdHi6B-myT"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.Text, "https://rahima-consulting.ru/calculator/V1StGXR8_Z5jdHi6B-myT") {
		t.Fatalf("expected calculation url:\n%s", out.Text)
	}
}
