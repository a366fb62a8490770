package dinogen

import (
	"encoding/json"

	"dinogen-tracker/internal/adapters/dinogen/api"
	"dinogen-tracker/internal/core/domain"
)

func mapPlayer(username string, resp *api.PlayerResponse) *domain.PlayerProfile {
	if resp == nil || resp.Data == nil {
		return nil
	}

	data := resp.Data
	classes := api.Object(data["classes"])

	return &domain.PlayerProfile{
		Username:      username,
		Data:          data,
		Level:         int(api.Number(data["level"])),
		XP:            api.Number(data["xp"]),
		Kills:         int(api.Number(data["kills"])),
		Deaths:        int(api.Number(data["deaths"])),
		AssaultClass:  mapClass(domain.ClassAssault, classes[domain.ClassAssault]),
		CommandoClass: mapClass(domain.ClassCommando, classes[domain.ClassCommando]),
		SupportClass:  mapClass(domain.ClassSupport, classes[domain.ClassSupport]),
		HunterClass:   mapClass(domain.ClassHunter, classes[domain.ClassHunter]),
	}
}

func mapClass(name string, raw json.RawMessage) domain.ClassStats {
	fields := api.Object(raw)
	return domain.ClassStats{
		Name:   name,
		Level:  int(api.Number(fields["level"])),
		XP:     api.Number(fields["xp"]),
		Kills:  int(api.Number(fields["kills"])),
		Deaths: int(api.Number(fields["deaths"])),
		Raw:    fields,
	}
}

func mapLeaderboard(entries []api.LeaderboardEntry) []domain.LeaderboardEntry {
	result := make([]domain.LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = domain.LeaderboardEntry{
			Username: e.Username,
			Score:    e.Score,
			Raw:      e.Raw,
		}
	}
	return result
}
