package entity

type ErrorCode struct {
	Code        string
	Description string
	Solution    string
}

// APIEndpoint describes a gateway operation. Path may contain a literal
// placeholder segment such as {id}.
type APIEndpoint struct {
	Name        string
	Method      string
	Path        string
	Description string
	Status      EndpointStatus
}

// KnowledgeItem is a help article; Description is markdown.
type KnowledgeItem struct {
	Title       string
	Description string
}

// TroubleshootingGuide holds the ordered steps for one issue type.
type TroubleshootingGuide struct {
	Issue string
	Steps []string
}

// PaymentMethodShare is one slice of the payment-method breakdown.
type PaymentMethodShare struct {
	Method  string
	Percent int
}
