package models

// PhishingEmail is one simulator scenario. Threats holds the indicator ids a
// careful reader should flag and is never sent to the client.
type PhishingEmail struct {
	ID       string   `json:"id"`
	From     string   `json:"from"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Threats  []string `json:"-"`
}

type PhishingThreat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type PhishingScenarios struct {
	Emails  []PhishingEmail  `json:"emails"`
	Threats []PhishingThreat `json:"threats"`
}

type PhishingResult struct {
	EmailID        string   `json:"email_id"`
	Category       string   `json:"category"`
	Score          int      `json:"score"`
	Detected       []string `json:"detected"`
	Missed         []string `json:"missed"`
	FalsePositives []string `json:"false_positives"`
}
