package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mainroles/internal/domain"
)

func TestCommands(t *testing.T) {
	require.Len(t, Commands, 2)

	for _, cmd := range Commands {
		_, err := domain.CategoryFromName(cmd.Name)
		assert.NoError(t, err, "command %q must resolve to a category", cmd.Name)

		require.Len(t, cmd.Options, 1)
		opt := cmd.Options[0]
		assert.Equal(t, "characters", opt.Name)
		assert.Equal(t, discordgo.ApplicationCommandOptionString, opt.Type)
		assert.Equal(t, "Characters separated by comma", opt.Description)
		assert.True(t, opt.Required)
	}
}
