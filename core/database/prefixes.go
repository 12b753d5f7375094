package database

import "CmdBot/core"

type GuildPrefix struct {
	GuildId string `db:"guild_id"`
	Prefix  string
}

// FetchGuildPrefix returns the prefix configured for a guild, or "" if the guild
// has never set one (or the database is unavailable).
func FetchGuildPrefix(guildID string) string {
	mu.RLock()
	defer mu.RUnlock()
	if database == nil {
		core.LogError("Database isn't open. Shouldn't happen.")
		return ""
	}
	row := GuildPrefix{}
	err := database.Get(&row, "SELECT * FROM guildprefix WHERE guild_id=$1", guildID)
	if err != nil {
		return ""
	}
	return row.Prefix
}

// SetGuildPrefix stores or replaces the prefix for a guild.
func SetGuildPrefix(guildID, prefix string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := database.Exec(
		"INSERT INTO guildprefix (guild_id, prefix) VALUES ($1, $2) ON CONFLICT(guild_id) DO UPDATE SET prefix=$2",
		guildID, prefix)
	if err != nil {
		core.LogErrorF("Failed to store prefix for guild %s: %s", guildID, err)
	}
	return err
}

// ClearGuildPrefix removes a guild's prefix override, falling back to the default.
func ClearGuildPrefix(guildID string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := database.Exec("DELETE FROM guildprefix WHERE guild_id=$1", guildID)
	if err != nil {
		core.LogErrorF("Failed to clear prefix for guild %s: %s", guildID, err)
	}
	return err
}
