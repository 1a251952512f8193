// Package discord is the chat transport in front of the generator: it owns
// command routing, reply formatting and Discord size limits, and calls into
// the core only through Generate and the two renderers.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/shinobirpg/shinobi-bot-discord/internal/catalog"
)

const (
	commandDossier = "dossier"
	commandHelp    = "dossier-help"

	formatText = "text"
	formatHTML = "html"
)

// Handler handles all Discord interactions
type Handler struct {
	catalog *catalog.Catalog
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	Catalog *catalog.Catalog
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		catalog: cfg.Catalog,
	}
}

// RegisterCommands registers the slash commands, globally when guildID is
// empty or for a single guild otherwise.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, command := range commandDefinitions() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, command); err != nil {
			return fmt.Errorf("register command %s: %w", command.Name, err)
		}
	}
	return nil
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandDossier,
			Description: "Сгенерировать случайного шиноби",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "seed",
					Description: "Зерно генератора для воспроизводимого досье",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "format",
					Description: "Формат вложения с досье",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Текстовая рамка", Value: formatText},
						{Name: "HTML-документ", Value: formatHTML},
					},
				},
			},
		},
		{
			Name:        commandHelp,
			Description: "Справка по командам бота",
		},
	}
}

// HandleInteraction routes an incoming interaction to its command handler
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case commandDossier:
		h.handleDossier(s, i, data)
	case commandHelp:
		h.handleHelp(s, i)
	}
}
