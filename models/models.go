package models

// Product is one catalog entry. Immutable after load.
type Product struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
}

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a conversation history
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response types
const (
	ResponseText     = "text"
	ResponseProducts = "products"
)

// Response is the outcome of handling one inbound message. Type is
// ResponseText (Content set) or ResponseProducts (Category and Items set).
type Response struct {
	Type     string    `json:"type"`
	Content  string    `json:"content,omitempty"`
	Category string    `json:"category,omitempty"`
	Items    []Product `json:"items,omitempty"`
}
