package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed files/*.html files/*.txt
var files embed.FS

const (
	orderCreatedSubject    = "Ваша заявка принята — Rahima Consulting"
	calculationLinkSubject = "Ваш расчёт стоимости услуг | Rahima Consulting"
)

type seriesTemplate struct {
	file    string
	title   string
	subject string
}

var series = map[domain.EmailTemplateType]seriesTemplate{
	domain.TemplateThankYou: {
		file:    "thank_you",
		title:   "Спасибо за заявку!",
		subject: "Спасибо за заявку! Мы свяжемся с вами в течение 2 часов",
	},
	domain.TemplateFollowUpDay1: {
		file:    "follow_up_day1",
		title:   "Почему нам доверяют?",
		subject: "Почему 500+ компаний выбрали Rahima Consulting",
	},
	domain.TemplateFollowUpDay3: {
		file:    "follow_up_day3",
		title:   "Специальное предложение",
		subject: "🎁 Специальное предложение только для вас -10%",
	},
	domain.TemplateFollowUpDay7: {
		file:    "follow_up_day7",
		title:   "Давайте обсудим ваш проект",
		subject: "Забыли про нас? Давайте обсудим ваш проект!",
	},
}

// Rendered is a ready-to-send subject with HTML and plain-text bodies.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type SeriesData struct {
	Name          string
	Email         string
	CalculationID string
	TotalMonthly  decimal.NullDecimal
}

type OrderCreatedData struct {
	Name          string
	ServiceName   string
	OrderNumber   string
	MonthlyAmount decimal.NullDecimal
	OneTimeAmount decimal.NullDecimal
}

type StatusChangedData struct {
	Name        string
	ServiceName string
	Status      domain.OrderStatus
	Comment     string
}

type CalculationLinkData struct {
	Name          string
	CalculationID string
	TotalMonthly  decimal.NullDecimal
}

type view struct {
	Title             string
	Name              string
	BaseURL           string
	DashboardURL      string
	CalculationURL    string
	HasTotal          bool
	TotalMonthly      string
	DiscountedMonthly string
	Discount          string
	ServiceName       string
	MonthlyAmount     string
	OneTimeAmount     string
	OrderNumber       string
	StatusLabel       string
	StatusColor       string
	Comment           string
}

type Renderer struct {
	html    *htmltemplate.Template
	text    *texttemplate.Template
	baseURL string
}

func NewRenderer(baseURL string) (*Renderer, error) {
	html, err := htmltemplate.ParseFS(files, "files/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(files, "files/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{
		html:    html,
		text:    text,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func MustNewRenderer(baseURL string) *Renderer {
	r, err := NewRenderer(baseURL)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) CalculationURL(id string) string {
	return fmt.Sprintf("%s/calculator/%s", r.baseURL, id)
}

func (r *Renderer) DashboardURL() string {
	return r.baseURL + "/dashboard/orders"
}

// Series renders one step of the lead follow-up series.
func (r *Renderer) Series(t domain.EmailTemplateType, data SeriesData) (Rendered, error) {
	tpl, ok := series[t]
	if !ok {
		return Rendered{}, fmt.Errorf("unknown email template %q", t)
	}

	v := r.baseView(tpl.title, data.Name)
	if data.CalculationID != "" {
		v.CalculationURL = r.CalculationURL(data.CalculationID)
	}
	if data.TotalMonthly.Valid && data.TotalMonthly.Decimal.IsPositive() {
		total := data.TotalMonthly.Decimal
		discount := total.Mul(decimal.NewFromFloat(0.1)).Round(0)
		v.HasTotal = true
		v.TotalMonthly = FormatAmount(total)
		v.Discount = FormatAmount(discount)
		v.DiscountedMonthly = FormatAmount(total.Sub(discount))
	}
	return r.render(tpl.file, tpl.subject, v)
}

func (r *Renderer) OrderCreated(data OrderCreatedData) (Rendered, error) {
	v := r.baseView("Спасибо за заявку!", data.Name)
	v.ServiceName = data.ServiceName
	v.OrderNumber = data.OrderNumber
	if data.MonthlyAmount.Valid && !data.MonthlyAmount.Decimal.IsZero() {
		v.MonthlyAmount = FormatAmount(data.MonthlyAmount.Decimal)
	}
	if data.OneTimeAmount.Valid && !data.OneTimeAmount.Decimal.IsZero() {
		v.OneTimeAmount = FormatAmount(data.OneTimeAmount.Decimal)
	}
	return r.render("order_created", orderCreatedSubject, v)
}

func (r *Renderer) StatusChanged(data StatusChangedData) (Rendered, error) {
	v := r.baseView("Статус вашей заявки изменён", data.Name)
	v.ServiceName = data.ServiceName
	v.StatusLabel = data.Status.Label()
	v.StatusColor = data.Status.Color()
	v.Comment = data.Comment
	return r.render("status_changed", "Статус заявки изменён — "+data.Status.Label(), v)
}

func (r *Renderer) CalculationLink(data CalculationLinkData) (Rendered, error) {
	v := r.baseView("Ваш расчёт готов", data.Name)
	v.CalculationURL = r.CalculationURL(data.CalculationID)
	if data.TotalMonthly.Valid && data.TotalMonthly.Decimal.IsPositive() {
		v.HasTotal = true
		v.TotalMonthly = FormatAmount(data.TotalMonthly.Decimal)
	}
	return r.render("calculation_link", calculationLinkSubject, v)
}

func (r *Renderer) baseView(title, name string) view {
	return view{
		Title:        title,
		Name:         name,
		BaseURL:      r.baseURL,
		DashboardURL: r.DashboardURL(),
	}
}

func (r *Renderer) render(name, subject string, v view) (Rendered, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", v); err != nil {
		return Rendered{}, fmt.Errorf("render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", v); err != nil {
		return Rendered{}, fmt.Errorf("render %s.txt: %w", name, err)
	}
	return Rendered{
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()),
	}, nil
}
