package discord

// Friendly message constants for Discord responses
const (
	MsgActorNotFound = "👤 **Adventurer Not Found**\nHave you ventured before? Try /venture first."

	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to rest before doing that again."

	MsgUnknownLocation = "🗺️ **Unknown Location**\nThat place isn't on any map we have."

	MsgAlreadyHealthy = "💚 You're already at full hearts."

	MsgGenericError = "❌ Something went wrong."
)
