package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// LocationsCommand returns the locations command definition and handler
func LocationsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "locations",
		Description: "List venture locations and tonight's sky",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		locations, gloamMoon, err := client.GetLocations()
		if err != nil {
			slog.Error("Failed to get locations", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		ids := make([]string, 0, len(locations))
		for id := range locations {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var sb strings.Builder
		for _, id := range ids {
			sb.WriteString(fmt.Sprintf("**%s** (`%s`)\n", locations[id], id))
		}

		title := "🗺️ Venture Locations"
		if gloamMoon {
			title = "🌑 Venture Locations - The Gloam Moon Rises"
			sb.WriteString("\nThe gloam moon is out. Every venture meets something.")
		}

		sendEmbed(s, i, createEmbed(title, sb.String(), colorRaid, ""))
	}

	return cmd, handler
}
