package conversation

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Turn is one message of a conversation. Turns are immutable once written.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// HistoryLimit bounds how many prior turns are fed back into a prompt.
const HistoryLimit = 10

// record is a row of the conversations table.
type record struct {
	UserID    string `json:"user_id"`
	Message   Turn   `json:"message"`
	Timestamp string `json:"timestamp"`
}
