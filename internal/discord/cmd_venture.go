package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// Embed colors per outcome kind
const (
	colorVictory     = 0x2ecc71
	colorDamaged     = 0xe67e22
	colorKnockedOut  = 0xe74c3c
	colorRaid        = 0x9b59b6
	colorNoEncounter = 0x95a5a6
)

// VentureCommand returns the venture command definition and handler
func VentureCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "venture",
		Description: "Venture into the gloam and face whatever finds you",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "location",
				Description: "Where to venture",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, "Missing required location argument")
			return
		}
		locationID := options[0].StringValue()

		result, err := client.Venture(user.ID, user.Username, locationID)
		if err != nil {
			slog.Error("Failed to venture", "error", err, "location", locationID)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed(ventureTitle(result.Outcome.Kind), result.Message, ventureColor(result.Outcome.Kind), "")
		if result.Actor != nil {
			embed.Fields = []*discordgo.MessageEmbedField{
				{
					Name:   "Hearts",
					Value:  heartsBar(result.Actor.Hearts, result.Actor.MaxHearts),
					Inline: true,
				},
			}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func ventureTitle(kind domain.OutcomeKind) string {
	switch kind {
	case domain.OutcomeVictory:
		return "⚔️ Victory"
	case domain.OutcomeDamaged:
		return "🩸 Wounded"
	case domain.OutcomeKnockedOut:
		return "💀 Knocked Out"
	case domain.OutcomeRaid:
		return "🌑 Gloam Raid"
	default:
		return "🌫️ Nothing Found"
	}
}

func ventureColor(kind domain.OutcomeKind) int {
	switch kind {
	case domain.OutcomeVictory:
		return colorVictory
	case domain.OutcomeDamaged:
		return colorDamaged
	case domain.OutcomeKnockedOut:
		return colorKnockedOut
	case domain.OutcomeRaid:
		return colorRaid
	default:
		return colorNoEncounter
	}
}

// heartsBar renders hearts as filled/empty symbols, e.g. ❤️x7 🖤x3
func heartsBar(hearts, maxHearts int) string {
	if maxHearts <= 0 {
		return "—"
	}
	bar := ""
	for h := 0; h < maxHearts; h++ {
		if h < hearts {
			bar += "❤️"
		} else {
			bar += "🖤"
		}
	}
	return bar
}
