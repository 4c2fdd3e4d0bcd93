package entity

// Session is a verified browser session issued by the identity provider.
type Session struct {
	ExternalID string
	Role       string
}
