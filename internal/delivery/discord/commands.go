package discord

import "github.com/bwmarrin/discordgo"

// Commands are the guild slash commands the bot registers on startup. Each
// command name doubles as the category name the handler resolves.
var Commands = []*discordgo.ApplicationCommand{
	characterCommand("main", "Set your mains"),
	characterCommand("secondary", "Set your secondaries"),
}

func characterCommand(name, description string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "characters",
				Description: "Characters separated by comma",
				Required:    true,
			},
		},
	}
}

// RegisterCommands overwrites the guild's application commands with the
// bot's command set. Must run after the session is ready.
func RegisterCommands(s *discordgo.Session, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, Commands)
	return err
}
