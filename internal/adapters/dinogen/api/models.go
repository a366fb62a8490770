package api

import "encoding/json"

// PlayerResponse is the body of /getPlayer. Data is nil when the service has
// no such player.
type PlayerResponse struct {
	Data map[string]json.RawMessage `json:"data"`
}

type BanResponse struct {
	Banned bool `json:"bBanned"`
}

// LeaderboardEntry keeps every key of the entry in Raw. Username and Score
// are read leniently from it.
type LeaderboardEntry struct {
	Username string
	Score    float64
	Raw      map[string]json.RawMessage
}

func (e *LeaderboardEntry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = LeaderboardEntry{
		Username: Text(raw["username"]),
		Score:    Number(raw["score"]),
		Raw:      raw,
	}
	return nil
}
