package domain

import (
	"context"
	"errors"
)

var (
	// ErrCorruptState reports a role ID held by a member that the guild's
	// role table does not know about.
	ErrCorruptState = errors.New("corrupt role state")
	// ErrNotInGuild reports a command invocation without guild context.
	ErrNotInGuild = errors.New("command used outside a guild")
)

// Role is a guild role as known to the directory service.
type Role struct {
	ID    string
	Name  string
	Color int
}

// Member is a guild member together with a snapshot of their role IDs.
type Member struct {
	ID       string
	Username string
	RoleIDs  []string
}

// HasRole reports whether the member's snapshot contains roleID.
func (m *Member) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// Directory is the narrow surface of the guild directory the synchronization
// engine depends on. List calls return complete snapshots; mutations are
// individually fallible and never retried here.
type Directory interface {
	ListRoles(ctx context.Context, guildID string) ([]*Role, error)
	ListMembers(ctx context.Context, guildID string) ([]*Member, error)
	AddMemberRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveMemberRole(ctx context.Context, guildID, userID, roleID string) error
	CreateRole(ctx context.Context, guildID, name string, color int) (*Role, error)
	DeleteRole(ctx context.Context, guildID, roleID string) error
}

// RoleSyncService reconciles a member's character roles in one category
// against a declared character set.
type RoleSyncService interface {
	Sync(ctx context.Context, guildID string, member *Member, category Category, characters CharacterSet) error
}
