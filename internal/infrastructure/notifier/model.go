package notifier

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

type amoCustomField struct {
	FieldCode string          `json:"field_code"`
	Values    []amoFieldValue `json:"values"`
}

type amoFieldValue struct {
	Value    string `json:"value"`
	EnumCode string `json:"enum_code,omitempty"`
}

type amoContact struct {
	Name               string           `json:"name"`
	CustomFieldsValues []amoCustomField `json:"custom_fields_values,omitempty"`
}

type amoEntityRef struct {
	ID int64 `json:"id"`
}

type amoLead struct {
	Name     string           `json:"name"`
	Price    int64            `json:"price,omitempty"`
	Embedded *amoLeadEmbedded `json:"_embedded,omitempty"`
}

type amoLeadEmbedded struct {
	Contacts []amoEntityRef `json:"contacts"`
}

type amoNote struct {
	EntityID int64         `json:"entity_id"`
	NoteType string        `json:"note_type"`
	Params   amoNoteParams `json:"params"`
}

type amoNoteParams struct {
	Text string `json:"text"`
}

type amoListResponse struct {
	Embedded struct {
		Contacts []amoEntityRef `json:"contacts"`
		Leads    []amoEntityRef `json:"leads"`
	} `json:"_embedded"`
}

// calculatorSnapshot is the part of Order.calculatorData the CRM note shows.
type calculatorSnapshot struct {
	BusinessParams *struct {
		BusinessType    string `json:"businessType"`
		TaxSystem       string `json:"taxSystem"`
		EmployeesCount  string `json:"employeesCount"`
		OperationsCount string `json:"operationsCount"`
	} `json:"businessParams"`
}
