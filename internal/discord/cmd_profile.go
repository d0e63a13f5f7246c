package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "View your adventurer profile",
	}

	caser := cases.Title(language.English)

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		adventurer, err := client.GetActor(user.ID)
		if err != nil {
			slog.Error("Failed to get actor", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		condition := "Ready to venture"
		if adventurer.KnockedOut {
			condition = "Knocked out - needs healing"
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s's Profile", user.Username),
			Color: colorVictory,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL(""),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "Job",
					Value:  caser.String(adventurer.Job),
					Inline: true,
				},
				{
					Name:   "Hearts",
					Value:  heartsBar(adventurer.Hearts, adventurer.MaxHearts),
					Inline: true,
				},
				{
					Name:   "Stamina",
					Value:  fmt.Sprintf("%d/%d", adventurer.Stamina, adventurer.MaxStamina),
					Inline: true,
				},
				{
					Name:   "Condition",
					Value:  condition,
					Inline: false,
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: FooterGloamBot,
			},
		}

		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
