package discord

// Friendly message constants for Discord responses
const (
	// Gift exchange
	MsgSignupsClosed         = "🎄 **Signups Are Closed**\nThe exchange isn't taking new names right now."
	MsgAlreadyJoined         = "🎁 **Already In!**\nYou're on the list - sit tight until matching day."
	MsgNotJoined             = "❓ **Not Signed Up**\nJoin the exchange first with `/santa join`."
	MsgNotEnoughParticipants = "🧑‍🤝‍🧑 **Not Enough Participants**\nA gift exchange needs at least two people."
	MsgMatchingInProgress    = "⏳ **Matching In Progress**\nA matching run is already underway - try again in a moment."
	MsgNoAssignment          = "🤫 **No Assignment Yet**\nMatching hasn't happened - watch for the announcement!"

	// Blight
	MsgCharacterNotFound = "👤 **Character Not Found**\nRegister them first with `/blight register`."
	MsgAlreadyBlighted   = "🍂 **Already Blighted**\nThat character is already infected."
	MsgNotBlighted       = "🌿 **Not Blighted**\nThat character is healthy - no treatment needed."
	MsgCharacterDead     = "💀 **Beyond Help**\nThe blight has already claimed that character."

	// Weather
	MsgNoWeather = "🌫️ **No Weather Yet**\nThe day's weather hasn't been rolled."

	// Input
	MsgInvalidInput = "⚠️ **Invalid Input**\nCheck the values you entered and try again."
	MsgBadDate      = "📅 **Bad Date**\nUse the format `YYYY-MM-DD`, e.g. `2026-12-24`."

	MsgGenericError = "❌ Something went wrong."
)
