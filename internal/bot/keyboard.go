package bot

// Menu button labels. The chat transport renders these as a reply keyboard;
// tapping a button sends its label back as a plain message.
const (
	CmdStart = "/start"

	BtnLatest  = "📦 Latest coffees"
	BtnRandom  = "🎲 Random coffee"
	BtnList    = "📋 Drink list"
	BtnFlavors = "🧪 Search by flavor"
	BtnTips    = "☕ Brewing tips"
	BtnAbout   = "ℹ️ About coffee"
	BtnSuggest = "📩 Suggestion box"
)

// mainKeyboard is the default reply keyboard shown on /start.
func mainKeyboard() [][]string {
	return [][]string{
		{BtnLatest, BtnRandom, BtnList},
		{BtnFlavors, BtnTips, BtnAbout},
		{BtnSuggest},
	}
}

var brewingTips = []string{
	"1. Use freshly ground coffee.",
	"2. Water temperature: 92–96°C.",
	"3. Don't pour boiling water — it turns bitter.",
	"4. Ratio: about 60 g of coffee per litre of water.",
	"5. Experiment with grind size for each brew method.",
}

const aboutCoffee = "Coffee is a drink brewed from roasted beans of the coffee tree.\n" +
	"There are countless varieties and brew methods. Coffee lifts your energy, " +
	"improves your mood and remains one of the most popular drinks in the world."

const greeting = "Hi! I'm a coffee bot ☕\nPick an action with the buttons below."

const helpText = "I didn't catch that. Use the keyboard buttons or send " + CmdStart + "."
