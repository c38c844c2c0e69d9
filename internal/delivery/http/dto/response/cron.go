package response

type CronResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SentCount int    `json:"sentCount"`
}

type CronStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Info    string `json:"info"`
}

type Error struct {
	Error string `json:"error"`
}
