package dto

// WebhookRequest mirrors the fulfillment request sent by the conversational
// platform. Only the fields the dispatch layer needs are mapped; everything
// else in the payload is ignored.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId"`
	QueryResult QueryResult `json:"queryResult" binding:"required"`
}

// QueryResult carries the resolved intent and the extracted parameter bag.
type QueryResult struct {
	QueryText  string         `json:"queryText"`
	Intent     Intent         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
}

// Intent identifies the matched intent by its display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// WebhookResponse is the reply envelope returned to the platform. The text is
// duplicated into fulfillmentMessages because some channel integrations only
// read one of the two fields.
type WebhookResponse struct {
	FulfillmentText     string               `json:"fulfillmentText"`
	FulfillmentMessages []FulfillmentMessage `json:"fulfillmentMessages"`
}

// FulfillmentMessage wraps one text message in the platform's message format.
type FulfillmentMessage struct {
	Text FulfillmentText `json:"text"`
}

// FulfillmentText holds the message lines shown to the end user.
type FulfillmentText struct {
	Text []string `json:"text"`
}

// NewWebhookResponse builds a reply envelope carrying a single text block.
func NewWebhookResponse(text string) WebhookResponse {
	return WebhookResponse{
		FulfillmentText: text,
		FulfillmentMessages: []FulfillmentMessage{
			{Text: FulfillmentText{Text: []string{text}}},
		},
	}
}
