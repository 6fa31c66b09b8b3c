package models

// ChatReply is what the chatbot endpoint returns. Confidence is 0.9 for
// generated replies and 0.7 for rule-based fallbacks.
type ChatReply struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
}

// ChatMessage is one transcript entry, stored in MongoDB.
type ChatMessage struct {
	UserID    string `json:"user_id" bson:"user_id"`
	Text      string `json:"message" bson:"message"`
	Sender    string `json:"sender" bson:"sender"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)
