package menu

// Topic identifies one of the fixed support categories a user can select
// from the main menu. Callback payloads carry the raw string value; anything
// coming off the wire must go through ParseTopic before it is treated as a
// Topic.
type Topic string

const (
	TopicDeposit     Topic = "deposit"
	TopicWithdraw    Topic = "withdraw"
	TopicLogin       Topic = "login"
	TopicMatch       Topic = "match"
	TopicTransaction Topic = "transaction"
	TopicAdmin       Topic = "admin"
	TopicFAQ         Topic = "faq"
)

// MainMenuKey is the reserved callback payload that returns the user to the
// main menu. It is not a Topic and never produces a ticket.
const MainMenuKey = "main_menu"

// Topics lists all support topics in main-menu display order.
var Topics = []Topic{
	TopicDeposit,
	TopicWithdraw,
	TopicLogin,
	TopicMatch,
	TopicTransaction,
	TopicAdmin,
	TopicFAQ,
}

// ParseTopic maps a raw callback payload onto the closed Topic enumeration.
// The second return value is false for anything outside the enumeration,
// including MainMenuKey.
func ParseTopic(data string) (Topic, bool) {
	t := Topic(data)
	if _, ok := catalog[t]; !ok {
		return "", false
	}
	return t, true
}

func (t Topic) String() string {
	return string(t)
}
