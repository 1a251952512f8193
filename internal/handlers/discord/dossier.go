package discord

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/shinobirpg/shinobi-bot-discord/internal/generator"
	"github.com/shinobirpg/shinobi-bot-discord/internal/render"
)

// dossierOptions are the parsed options of a /dossier invocation
type dossierOptions struct {
	Seed    int64
	HasSeed bool
	Format  string
}

func parseDossierOptions(data discordgo.ApplicationCommandInteractionData) dossierOptions {
	opts := dossierOptions{Format: formatText}
	for _, option := range data.Options {
		switch option.Name {
		case "seed":
			opts.Seed = option.IntValue()
			opts.HasSeed = true
		case "format":
			opts.Format = option.StringValue()
		}
	}
	return opts
}

func (h *Handler) handleDossier(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := parseDossierOptions(data)

	seed := time.Now().UnixNano()
	if opts.HasSeed {
		seed = opts.Seed
	}

	// One seeded source per invocation keeps every dossier's draw sequence
	// independent of concurrent commands.
	svc := generator.NewService(&generator.ServiceConfig{
		Catalog: h.catalog,
		Rand:    rand.New(rand.NewSource(seed)),
	})

	sheet, err := svc.Generate()
	if err != nil {
		log.Printf("Dossier generation failed: %v", err)
		respondEphemeral(s, i, "Не удалось собрать досье: в каталоге не хватает записей.")
		return
	}

	// The full sheet goes as a file: the boxed layout does not survive
	// Discord's 2000-character message limit.
	dossierID := uuid.New().String()
	file := &discordgo.File{
		Name:        "dossier-" + dossierID + ".txt",
		ContentType: "text/plain; charset=utf-8",
		Reader:      strings.NewReader(render.Text(sheet)),
	}
	if opts.Format == formatHTML {
		file = &discordgo.File{
			Name:        "dossier-" + dossierID + ".html",
			ContentType: "text/html; charset=utf-8",
			Reader:      strings.NewReader(render.HTML(sheet)),
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{buildDossierEmbed(sheet)},
			Files:  []*discordgo.File{file},
		},
	})
	if err != nil {
		log.Printf("Failed to respond with dossier %s: %v", dossierID, err)
		return
	}

	log.Printf("Delivered dossier %s (format: %s, seeded: %v)", dossierID, opts.Format, opts.HasSeed)
}

// buildDossierEmbed summarizes a sheet for the chat message next to the
// attachment.
func buildDossierEmbed(sheet *generator.CharacterSheet) *discordgo.MessageEmbed {
	rows := render.InfoRows(sheet)
	fields := make([]*discordgo.MessageEmbedField, 0, len(rows))
	for _, row := range rows {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   row.Label,
			Value:  row.Value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "SHINOBI // CYBERPUNK DOSSIER",
		Color:  0x7df9ff,
		Fields: fields,
	}
}

func (h *Handler) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i,
		"Команды:\n"+
			"/dossier — создать нового персонажа;\n"+
			"/dossier-help — краткая справка.")
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to interaction: %v", err)
	}
}
