package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a renderer in the worker ("welcome" is the only one today);
// Subject/Text/HTML may be supplied directly instead.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
