package menu

// KeyboardKind names which keyboard a catalog entry attaches to its reply.
type KeyboardKind int

const (
	KeyboardMain KeyboardKind = iota
	KeyboardBack
)

// Entry is one row of the static menu catalog: the button label shown in the
// main menu, the response body sent when the topic is selected, the keyboard
// attached to that response and whether selecting the topic opens a support
// ticket.
type Entry struct {
	Label         string
	Body          string
	Next          KeyboardKind
	CreatesTicket bool
}

// CommunityURL is the external community link shown as the last main-menu
// button. It opens in the chat client and is never routed through the bot.
const CommunityURL = "https://chat.whatsapp.com/CqntEdO4vRXDNbLC5cjZlE"

const CommunityLabel = "💬 Join WhatsApp Community"

const (
	// WelcomeText greets a user on /start.
	WelcomeText = "👋 *Welcome to LastZone Support!*\n\n" +
		"I am here to help you with your tournament and payment queries.\n" +
		"Please select a topic from the menu below:"

	// MainMenuText is shown when the user navigates back to the main menu.
	MainMenuText = "👋 *Welcome to LastZone Support!*\n\n" +
		"How can we assist you today? Select an option below:"

	// FallbackText is the reply for a callback payload outside the catalog.
	FallbackText = "Unknown selection. Please type /start to restart."
)

var catalog = map[Topic]Entry{
	TopicDeposit: {
		Label: "💰 Deposit Issues",
		Body: "*💰 Deposit Issues*\n\n" +
			"Please upload the following details here:\n" +
			"1. Your User ID\n" +
			"2. Amount Deposited\n" +
			"3. A clear screenshot of the payment\n\n" +
			"Our team will verify and update your balance shortly.",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicWithdraw: {
		Label: "💸 Withdraw Problems",
		Body: "*💸 Withdraw Problems*\n\n" +
			"Withdrawals are usually processed within **24 Hours**.\n" +
			"If the status is 'Complete', please check your account statement.\n" +
			"If 'Pending' for >24 hours, contact Admin.",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicLogin: {
		Label: "🔐 Login / Account Help",
		Body: "*🔐 Login / Account Help*\n\n" +
			"• Forgot Password? Use the 'Forgot Password' link on the login page.\n" +
			"• Account Blocked? Contact @lastzonecare immediately.",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicMatch: {
		Label: "🎮 Match-Related Issues",
		Body: "*🎮 Match-Related Issues*\n\n" +
			"Please provide:\n" +
			"• Match ID\n" +
			"• Detailed description of the issue (e.g., scoring error, connection loss).",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicTransaction: {
		Label: "📄 Transaction Not Showing",
		Body: "*📄 Transaction Not Showing*\n\n" +
			"Sometimes banking networks are slow.\n" +
			"Please wait up to **30 minutes**.\n" +
			"If it still doesn't show, send us the Transaction Reference ID.",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicAdmin: {
		Label: "👨💻 Contact Admin",
		Body: "*👨💻 Contact Admin*\n\n" +
			"For urgent or unresolved issues, contact our official admin:\n" +
			"👉 @lastzonecare",
		Next:          KeyboardBack,
		CreatesTicket: true,
	},
	TopicFAQ: {
		Label: "❓ FAQs",
		Body: "*❓ Frequently Asked Questions*\n\n" +
			"• **Min Deposit:** ₹1\n" +
			"• **Min Withdrawal:** ₹50\n" +
			"• **Withdrawal Time:** 24 Hours\n" +
			"• **Support Hours:** 24/7 Live Support 🟢",
		Next:          KeyboardBack,
		CreatesTicket: false,
	},
}

// Lookup returns the catalog entry for a topic. Topics always resolve since
// ParseTopic only admits keys present in the catalog.
func Lookup(t Topic) Entry {
	return catalog[t]
}
