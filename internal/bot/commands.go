// Package bot serves the Discord slash commands that let users manage their
// saved searches and inspect scanner statistics.
package bot

import "github.com/bwmarrin/discordgo"

// Command names.
const (
	CommandAdd    = "add"
	CommandList   = "list"
	CommandRemove = "remove"
	CommandStats  = "stats"
)

// Option names.
const (
	optName     = "name"
	optKeywords = "keywords"
	optMaxPrice = "max_price"
	optMargin   = "margin"
	optIndex    = "index"
)

// Commands returns the slash command definitions registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	minIndex := 1.0

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandAdd,
			Description: "Add a saved search",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optName,
					Description: "Label shown in deal alerts",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        optKeywords,
					Description: "Catalog search text",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        optMaxPrice,
					Description: "Highest listing price to consider",
					Type:        discordgo.ApplicationCommandOptionNumber,
					Required:    true,
				},
				{
					Name:        optMargin,
					Description: "Resale multiplier (default 1.8)",
					Type:        discordgo.ApplicationCommandOptionNumber,
				},
			},
		},
		{
			Name:        CommandList,
			Description: "List your saved searches",
		},
		{
			Name:        CommandRemove,
			Description: "Remove a saved search",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        optIndex,
					Description: "Position shown by /list",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
					MinValue:    &minIndex,
				},
			},
		},
		{
			Name:        CommandStats,
			Description: "Scanner statistics",
		},
	}
}
