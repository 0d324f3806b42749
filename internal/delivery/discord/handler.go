package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"mainroles/internal/domain"
)

const successResponse = "Roles successfully updated"

// Handler routes slash command interactions to the role sync service.
type Handler struct {
	Logger  *slog.Logger
	Service domain.RoleSyncService
}

func NewHandler(logger *slog.Logger, svc domain.RoleSyncService) *Handler {
	return &Handler{Logger: logger, Service: svc}
}

// Invocation is one slash command use, reduced to what the engine needs.
type Invocation struct {
	GuildID string
	Command string
	RawText string
	Member  *domain.Member
}

// Handle runs one invocation and returns the response text shown to the
// member. Non-guild invocations and unknown commands are rejected before any
// remote call is made.
func (h *Handler) Handle(ctx context.Context, inv Invocation) string {
	if inv.GuildID == "" || inv.Member == nil {
		h.Logger.WarnContext(ctx, "command used outside a guild", "command", inv.Command)
		return domain.ErrNotInGuild.Error()
	}
	category, err := domain.CategoryFromName(inv.Command)
	if err != nil {
		h.Logger.WarnContext(ctx, "command not found", "command", inv.Command)
		return err.Error()
	}

	characters := domain.ParseCharacters(inv.RawText)
	if err := h.Service.Sync(ctx, inv.GuildID, inv.Member, category, characters); err != nil {
		h.Logger.ErrorContext(ctx, "role synchronization failed",
			"command", inv.Command, "member", inv.Member.Username, "err", err)
		return err.Error()
	}
	return successResponse
}

// HandleInteraction adapts a gateway interaction event into an Invocation
// and responds with the outcome.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()

	inv := Invocation{
		GuildID: i.GuildID,
		Command: data.Name,
		RawText: optionString(data.Options, "characters"),
	}
	if i.Member != nil && i.Member.User != nil {
		inv.Member = &domain.Member{
			ID:       i.Member.User.ID,
			Username: i.Member.User.Username,
			RoleIDs:  i.Member.Roles,
		}
	}

	content := h.Handle(context.Background(), inv)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		h.Logger.Error("unable to respond to interaction", "err", err)
	}
}

func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
