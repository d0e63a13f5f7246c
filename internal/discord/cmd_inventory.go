package discord

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your collected loot",
	}

	caser := cases.Title(language.English)

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		items, err := client.GetInventory(user.ID)
		if err != nil {
			slog.Error("Failed to get inventory", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(items) == 0 {
			sendEmbed(s, i, createEmbed("🎒 Inventory", "Nothing but lint. Go venture!", colorNoEncounter, ""))
			return
		}

		names := make([]string, 0, len(items))
		for name := range items {
			names = append(names, name)
		}
		sort.Strings(names)

		var sb strings.Builder
		for _, name := range names {
			display := caser.String(strings.ReplaceAll(name, "_", " "))
			sb.WriteString(fmt.Sprintf("**%s** x%d\n", display, items[name]))
		}

		sendEmbed(s, i, createEmbed("🎒 Inventory", sb.String(), colorVictory, ""))
	}

	return cmd, handler
}
