package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"mainroles/internal/domain"
)

// memberPageSize is Discord's maximum page size for the list-members endpoint.
const memberPageSize = 1000

type directory struct {
	session *discordgo.Session
}

// NewDirectory returns a domain.Directory backed by the Discord REST API.
func NewDirectory(session *discordgo.Session) domain.Directory {
	return &directory{session: session}
}

func (d *directory) ListRoles(ctx context.Context, guildID string) ([]*domain.Role, error) {
	roles, err := d.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch guild roles: %w", err)
	}
	out := make([]*domain.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, &domain.Role{ID: r.ID, Name: r.Name, Color: r.Color})
	}
	return out, nil
}

func (d *directory) ListMembers(ctx context.Context, guildID string) ([]*domain.Member, error) {
	var out []*domain.Member
	after := ""
	for {
		page, err := d.session.GuildMembers(guildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch guild members: %w", err)
		}
		for _, m := range page {
			out = append(out, &domain.Member{
				ID:       m.User.ID,
				Username: m.User.Username,
				RoleIDs:  m.Roles,
			})
		}
		if len(page) < memberPageSize {
			return out, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func (d *directory) AddMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := d.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add role to member: %w", err)
	}
	return nil
}

func (d *directory) RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := d.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("remove role from member: %w", err)
	}
	return nil
}

func (d *directory) CreateRole(ctx context.Context, guildID, name string, color int) (*domain.Role, error) {
	role, err := d.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:  name,
		Color: &color,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("create guild role: %w", err)
	}
	return &domain.Role{ID: role.ID, Name: role.Name, Color: role.Color}, nil
}

func (d *directory) DeleteRole(ctx context.Context, guildID, roleID string) error {
	if err := d.session.GuildRoleDelete(guildID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete guild role: %w", err)
	}
	return nil
}
