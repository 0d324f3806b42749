package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"mainroles/internal/domain"
)

type roleSyncService struct {
	dir    domain.Directory
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRoleSyncService creates a RoleSyncService backed by the given directory.
func NewRoleSyncService(dir domain.Directory, logger *slog.Logger) domain.RoleSyncService {
	return &roleSyncService{
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Sync replaces the member's character roles in the category with the given
// set: existing category roles are removed first (roles left without any
// holder are deleted from the guild), then every declared character's role
// is added, created on demand. The clear phase runs to completion before the
// assign phase starts, so the assign-phase role lookup sees the deletions.
// Invocations are serialized per guild and category.
func (s *roleSyncService) Sync(ctx context.Context, guildID string, member *domain.Member, category domain.Category, characters domain.CharacterSet) error {
	lock := s.lockFor(guildID, category)
	lock.Lock()
	defer lock.Unlock()

	if err := s.clear(ctx, guildID, member, category); err != nil {
		return err
	}
	if err := s.assign(ctx, guildID, member, category, characters); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "roles synchronized",
		"member", member.Username,
		"category", category.Name(),
		"characters", []string(characters),
	)
	return nil
}

func (s *roleSyncService) lockFor(guildID string, category domain.Category) *sync.Mutex {
	key := guildID + "/" + category.Name()
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// clear removes every role of the category from the member and deletes roles
// no other member still holds. Role and member snapshots are fetched once;
// the holder check runs against the pre-removal member snapshot with the
// invoking member excluded. A role ID on the member that is missing from the
// guild's role table aborts the invocation with ErrCorruptState.
func (s *roleSyncService) clear(ctx context.Context, guildID string, member *domain.Member, category domain.Category) error {
	members, err := s.dir.ListMembers(ctx, guildID)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}
	roles, err := s.dir.ListRoles(ctx, guildID)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}

	rolesByID := make(map[string]*domain.Role, len(roles))
	for _, r := range roles {
		rolesByID[r.ID] = r
	}

	held := make([]string, len(member.RoleIDs))
	copy(held, member.RoleIDs)

	for _, roleID := range held {
		role, ok := rolesByID[roleID]
		if !ok {
			return fmt.Errorf("%w: member %s holds role %s missing from the guild", domain.ErrCorruptState, member.Username, roleID)
		}
		if !category.IsCategoryRole(role.Name) {
			continue
		}

		s.logger.InfoContext(ctx, "removing role from member",
			"phase", "clear", "role", role.Name, "member", member.Username)
		if err := s.dir.RemoveMemberRole(ctx, guildID, member.ID, roleID); err != nil {
			return fmt.Errorf("remove role %q from member %s: %w", role.Name, member.Username, err)
		}
		member.RoleIDs = without(member.RoleIDs, roleID)

		if roleHeldByOthers(members, member.ID, roleID) {
			continue
		}
		s.logger.InfoContext(ctx, "deleting role without holders",
			"phase", "clear", "role", role.Name)
		if err := s.dir.DeleteRole(ctx, guildID, roleID); err != nil {
			return fmt.Errorf("delete role %q: %w", role.Name, err)
		}
	}
	return nil
}

// assign adds the role for every declared character, creating missing roles
// with the category's color. Roles are matched by exact name against a fresh
// snapshot. Operations run sequentially in set order; the first failure
// aborts, leaving prior additions in place.
func (s *roleSyncService) assign(ctx context.Context, guildID string, member *domain.Member, category domain.Category, characters domain.CharacterSet) error {
	if len(characters) == 0 {
		return nil
	}
	roles, err := s.dir.ListRoles(ctx, guildID)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}
	rolesByName := make(map[string]*domain.Role, len(roles))
	for _, r := range roles {
		rolesByName[r.Name] = r
	}

	for _, character := range characters {
		roleName := category.RoleName(character)
		role, ok := rolesByName[roleName]
		if !ok {
			s.logger.InfoContext(ctx, "creating role",
				"phase", "assign", "role", roleName)
			role, err = s.dir.CreateRole(ctx, guildID, roleName, category.Color())
			if err != nil {
				return fmt.Errorf("create role %q: %w", roleName, err)
			}
			rolesByName[roleName] = role
		}
		s.logger.InfoContext(ctx, "adding role to member",
			"phase", "assign", "role", roleName, "member", member.Username)
		if err := s.dir.AddMemberRole(ctx, guildID, member.ID, role.ID); err != nil {
			return fmt.Errorf("add role %q to member %s: %w", roleName, member.Username, err)
		}
		member.RoleIDs = append(member.RoleIDs, role.ID)
	}
	return nil
}

func without(ids []string, roleID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != roleID {
			out = append(out, id)
		}
	}
	return out
}

func roleHeldByOthers(members []*domain.Member, selfID, roleID string) bool {
	for _, m := range members {
		if m.ID == selfID {
			continue
		}
		if m.HasRole(roleID) {
			return true
		}
	}
	return false
}
