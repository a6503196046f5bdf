package domain

// IncomingMessage is one text message received from a chat user. The
// concrete bot transport delivers these over the webhook; the router only
// ever sees this shape.
type IncomingMessage struct {
	UserID   string `json:"userId" binding:"required"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Text     string `json:"text"`
}

// Forward is a message addressed to a user other than the sender, e.g. a
// suggestion relayed to the operator. The transport adapter is responsible
// for actually delivering it.
type Forward struct {
	ToUserID string `json:"toUserId"`
	Text     string `json:"text"`
}

// Reply is the full response envelope for one incoming message. Messages
// are sent to the originating user in order; Keyboard, when present,
// replaces the user's reply keyboard.
type Reply struct {
	Messages []string   `json:"messages"`
	Keyboard [][]string `json:"keyboard,omitempty"`
	Forwards []Forward  `json:"forwards,omitempty"`
}
