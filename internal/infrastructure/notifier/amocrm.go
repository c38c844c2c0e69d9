package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/shopspring/decimal"
)

type AmoCRMClient struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewAmoCRMClient(cfg config.AmoCRM) *AmoCRMClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.amocrm.ru", cfg.Subdomain)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AmoCRMClient{
		token:   cfg.AccessToken,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *AmoCRMClient) Enabled() bool {
	return c.token != ""
}

// CreateDealFromOrder finds or creates the contact, opens a lead and attaches the request details as a note.
func (c *AmoCRMClient) CreateDealFromOrder(ctx context.Context, req domain.CRMDealRequest) (*domain.CRMDeal, error) {
	if !c.Enabled() {
		return nil, domain.ErrCollaboratorDisabled
	}

	contactID, err := c.findOrCreateContact(ctx, req.UserName, req.UserEmail, req.UserPhone)
	if err != nil {
		return nil, fmt.Errorf("amocrm contact: %w", err)
	}

	lead := amoLead{
		Name:     "Заявка: " + req.ServiceName,
		Embedded: &amoLeadEmbedded{Contacts: []amoEntityRef{{ID: contactID}}},
	}
	total := decimal.Zero
	if req.MonthlyAmount.Valid {
		total = total.Add(req.MonthlyAmount.Decimal)
	}
	if req.OneTimeAmount.Valid {
		total = total.Add(req.OneTimeAmount.Decimal)
	}
	if total.IsPositive() {
		lead.Price = total.Round(0).IntPart()
	}

	dealID, err := c.createLead(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("amocrm lead: %w", err)
	}

	if note := buildDealNote(req); note != "" {
		if err := c.addNote(ctx, dealID, note); err != nil {
			slog.Warn("failed to add note to amocrm deal", "deal_id", dealID, "error", err)
		}
	}

	return &domain.CRMDeal{DealID: dealID, ContactID: contactID}, nil
}

func (c *AmoCRMClient) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.token}
}

func (c *AmoCRMClient) findOrCreateContact(ctx context.Context, name, email, phone string) (int64, error) {
	query := email
	if query == "" {
		query = phone
	}
	if query != "" {
		var found amoListResponse
		searchURL := fmt.Sprintf("%s/api/v4/contacts?query=%s", c.baseURL, url.QueryEscape(query))
		if err := doJSON(ctx, c.client, http.MethodGet, searchURL, c.headers(), nil, &found); err != nil {
			slog.Warn("amocrm contact search failed", "error", err)
		} else if len(found.Embedded.Contacts) > 0 {
			return found.Embedded.Contacts[0].ID, nil
		}
	}

	contact := amoContact{Name: name}
	if email != "" {
		contact.CustomFieldsValues = append(contact.CustomFieldsValues, amoCustomField{
			FieldCode: "EMAIL",
			Values:    []amoFieldValue{{Value: email, EnumCode: "WORK"}},
		})
	}
	if phone != "" {
		contact.CustomFieldsValues = append(contact.CustomFieldsValues, amoCustomField{
			FieldCode: "PHONE",
			Values:    []amoFieldValue{{Value: phone, EnumCode: "WORK"}},
		})
	}

	var created amoListResponse
	if err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/api/v4/contacts", c.headers(), []amoContact{contact}, &created); err != nil {
		return 0, err
	}
	if len(created.Embedded.Contacts) == 0 {
		return 0, fmt.Errorf("empty contact create response")
	}
	return created.Embedded.Contacts[0].ID, nil
}

func (c *AmoCRMClient) createLead(ctx context.Context, lead amoLead) (int64, error) {
	var created amoListResponse
	if err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/api/v4/leads", c.headers(), []amoLead{lead}, &created); err != nil {
		return 0, err
	}
	if len(created.Embedded.Leads) == 0 {
		return 0, fmt.Errorf("empty lead create response")
	}
	return created.Embedded.Leads[0].ID, nil
}

func (c *AmoCRMClient) addNote(ctx context.Context, dealID int64, text string) error {
	note := amoNote{EntityID: dealID, NoteType: "common", Params: amoNoteParams{Text: text}}
	notesURL := fmt.Sprintf("%s/api/v4/leads/%d/notes", c.baseURL, dealID)
	return doJSON(ctx, c.client, http.MethodPost, notesURL, c.headers(), []amoNote{note}, nil)
}

func buildDealNote(req domain.CRMDealRequest) string {
	var b strings.Builder
	b.WriteString(req.Description)

	if len(req.CalculatorData) == 0 {
		return b.String()
	}

	b.WriteString("\n\nДанные из калькулятора:\n")
	var snapshot calculatorSnapshot
	if err := json.Unmarshal(req.CalculatorData, &snapshot); err == nil && snapshot.BusinessParams != nil {
		p := snapshot.BusinessParams
		fmt.Fprintf(&b, "Тип бизнеса: %s\n", p.BusinessType)
		fmt.Fprintf(&b, "Система налогообложения: %s\n", p.TaxSystem)
		fmt.Fprintf(&b, "Сотрудников: %s\n", p.EmployeesCount)
		fmt.Fprintf(&b, "Операций/мес: %s\n", p.OperationsCount)
	}
	if req.MonthlyAmount.Valid && !req.MonthlyAmount.Decimal.IsZero() {
		fmt.Fprintf(&b, "\nЕжемесячно: %s ₽", templates.FormatAmount(req.MonthlyAmount.Decimal))
	}
	if req.OneTimeAmount.Valid && !req.OneTimeAmount.Decimal.IsZero() {
		fmt.Fprintf(&b, "\nРазово: %s ₽", templates.FormatAmount(req.OneTimeAmount.Decimal))
	}
	return b.String()
}
