package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// HealCommand returns the heal command definition and handler
func HealCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minHearts := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "heal",
		Description: "Restore hearts with a tonic",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "hearts",
				Description: "How many hearts to restore (default: 1)",
				Required:    false,
				MinValue:    &minHearts,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		hearts := 1
		if options := getOptions(i); len(options) > 0 {
			hearts = int(options[0].IntValue())
		}

		healed, err := client.Heal(user.ID, hearts)
		if err != nil {
			slog.Error("Failed to heal", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		msg := fmt.Sprintf("You rest and recover.\n%s", heartsBar(healed.Hearts, healed.MaxHearts))
		if !healed.KnockedOut && healed.Hearts <= hearts {
			// Came back from zero
			msg = fmt.Sprintf("You stagger back to your feet!\n%s", heartsBar(healed.Hearts, healed.MaxHearts))
		}

		embed := createEmbed("💚 Healed", msg, colorVictory, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
