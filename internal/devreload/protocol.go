package devreload

// Message is sent to every connected page.
type Message struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

const (
	// TypeHello is sent once when a page connects.
	TypeHello = "hello"
	// TypeReload asks the page to reload itself.
	TypeReload = "reload"
)
