package nlpearl

// Account describes the authenticated account.
type Account struct {
	Name          string  `json:"name"`
	CreditBalance float64 `json:"creditBalance"`
	TotalAgents   int     `json:"totalAgents"`
	Status        int     `json:"status"`
}

// Call is a completed or in-progress call.
type Call struct {
	ID                 string         `json:"id"`
	RelatedID          string         `json:"relatedId,omitempty"`
	StartTime          string         `json:"startTime,omitempty"`
	Status             int            `json:"status"`
	Duration           int            `json:"duration"`
	From               string         `json:"from"`
	To                 string         `json:"to"`
	Name               string         `json:"name,omitempty"`
	ConversationStatus int            `json:"conversationStatus"`
	OverallSentiment   *int           `json:"overallSentiment,omitempty"`
	IsCallTransferred  *bool          `json:"isCallTransferred,omitempty"`
	Tags               []string       `json:"tags,omitempty"`
	Summary            string         `json:"summary,omitempty"`
	Transcript         []any          `json:"transcript,omitempty"`
	CollectedInfo      []any          `json:"collectedInfo,omitempty"`
	CallData           map[string]any `json:"callData,omitempty"`
}

// Lead is a contact targeted by an outbound campaign.
// It can be addressed by ID, ExternalID or PhoneNumber.
type Lead struct {
	ID          string         `json:"id"`
	ExternalID  string         `json:"externalId,omitempty"`
	PhoneNumber string         `json:"phoneNumber"`
	TimeZoneID  string         `json:"timeZoneId,omitempty"`
	Status      int            `json:"status"`
	CallData    map[string]any `json:"callData,omitempty"`
}

// CallRequest tracks a v1 outbound dial attempt before it becomes a Call.
type CallRequest struct {
	ID       string         `json:"id"`
	CallID   string         `json:"callId,omitempty"`
	Created  string         `json:"created,omitempty"`
	To       string         `json:"to"`
	From     string         `json:"from,omitempty"`
	Status   int            `json:"status"`
	CallData map[string]any `json:"callData,omitempty"`
}

// Campaign is a v2 Pearl or a v1 Inbound/Outbound as returned by listing calls.
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

// OngoingCalls reports live activity for a campaign.
type OngoingCalls struct {
	TotalOngoingCalls int `json:"totalOngoingCalls"`
	TotalOnQueue      int `json:"totalOnQueue"`
}

// Page is one page of a paginated search.
type Page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}
