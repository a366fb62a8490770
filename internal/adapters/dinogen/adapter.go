package dinogen

import (
	"context"

	"dinogen-tracker/internal/adapters/dinogen/api"
	"dinogen-tracker/internal/core/domain"
)

type Adapter struct {
	client *api.Client
}

func NewAdapter(client *api.Client) *Adapter {
	return &Adapter{client: client}
}

// FetchPlayerData returns a profile without the ban flag, or nil when the
// response carries no data object.
func (a *Adapter) FetchPlayerData(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	resp, err := a.client.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}
	return mapPlayer(username, resp), nil
}

func (a *Adapter) FetchBanFlag(ctx context.Context, username string) (bool, error) {
	resp, err := a.client.IsBanned(ctx, username)
	if err != nil {
		return false, err
	}
	return resp.Banned, nil
}

func (a *Adapter) FetchLeaderboardEntries(ctx context.Context, category domain.Category) ([]domain.LeaderboardEntry, error) {
	entries, err := a.client.GetLeaderboard(ctx, string(category))
	if err != nil {
		return nil, err
	}
	return mapLeaderboard(entries), nil
}

func (a *Adapter) FetchConnectedPlayers(ctx context.Context) (int, error) {
	players, err := a.client.GetConnectedPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return len(players), nil
}
