package request

type CreateNotificationRequest struct {
	Type    string  `json:"type"`
	Title   string  `json:"title"`
	Message string  `json:"message"`
	Link    *string `json:"link"`
}

type UpdateNotificationRequest struct {
	Read *bool `json:"read"`
}

type UpdateSettingsRequest struct {
	EmailEnabled       *bool `json:"emailEnabled"`
	EmailOrderUpdates  *bool `json:"emailOrderUpdates"`
	EmailDocumentReady *bool `json:"emailDocumentReady"`
	EmailReminders     *bool `json:"emailReminders"`
	EmailPromotions    *bool `json:"emailPromotions"`
	PushEnabled        *bool `json:"pushEnabled"`
	PushOrderUpdates   *bool `json:"pushOrderUpdates"`
	PushDocumentReady  *bool `json:"pushDocumentReady"`
	PushReminders      *bool `json:"pushReminders"`
	PushPromotions     *bool `json:"pushPromotions"`
}
