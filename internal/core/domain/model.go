package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Class names as keyed in a player's "classes" object.
const (
	ClassAssault  = "assault"
	ClassCommando = "commando"
	ClassSupport  = "support"
	ClassHunter   = "hunter"
)

type ClassStats struct {
	Name   string
	Level  int
	XP     float64
	Kills  int
	Deaths int
	Raw    map[string]json.RawMessage
}

// PlayerProfile is a point-in-time snapshot of one player. Fetch it again to
// observe changes.
type PlayerProfile struct {
	Username string
	Data     map[string]json.RawMessage

	Level  int
	XP     float64
	Kills  int
	Deaths int

	AssaultClass  ClassStats
	CommandoClass ClassStats
	SupportClass  ClassStats
	HunterClass   ClassStats

	IsBanned bool
}

// Field returns the raw value of a top-level key of the player's data.
func (p *PlayerProfile) Field(key string) (json.RawMessage, bool) {
	v, ok := p.Data[key]
	return v, ok
}

// Keys lists the top-level keys of the player's data in sorted order.
func (p *PlayerProfile) Keys() []string {
	keys := make([]string, 0, len(p.Data))
	for k := range p.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *PlayerProfile) Classes() []ClassStats {
	return []ClassStats{p.AssaultClass, p.CommandoClass, p.SupportClass, p.HunterClass}
}

type LeaderboardEntry struct {
	Username string
	Score    float64
	Raw      map[string]json.RawMessage
}

// TopSize is the number of ranked entries every snapshot must carry.
const TopSize = 10

type LeaderboardSnapshot struct {
	Category  Category
	Entries   []LeaderboardEntry
	FetchedAt time.Time
}

// NewLeaderboardSnapshot keeps entries in response order. It fails with
// ErrIndexOutOfRange when fewer than TopSize entries are present.
func NewLeaderboardSnapshot(category Category, entries []LeaderboardEntry, fetchedAt time.Time) (*LeaderboardSnapshot, error) {
	if len(entries) < TopSize {
		return nil, fmt.Errorf("%w: leaderboard %q has %d entries, need %d", ErrIndexOutOfRange, category, len(entries), TopSize)
	}
	return &LeaderboardSnapshot{
		Category:  category,
		Entries:   entries,
		FetchedAt: fetchedAt,
	}, nil
}

func (s *LeaderboardSnapshot) TopScore() float64 {
	return s.Entries[0].Score
}

// Rank returns the entry at the 1-based position rank, with 1 being the top
// entry. Only the first TopSize positions are addressable.
func (s *LeaderboardSnapshot) Rank(rank int) (LeaderboardEntry, error) {
	if rank < 1 || rank > TopSize {
		return LeaderboardEntry{}, fmt.Errorf("%w: rank must be between 1 and %d, got %d", ErrInvalidArgument, TopSize, rank)
	}
	return s.Entries[rank-1], nil
}

func (s *LeaderboardSnapshot) Top() [TopSize]LeaderboardEntry {
	var top [TopSize]LeaderboardEntry
	copy(top[:], s.Entries)
	return top
}

func (s *LeaderboardSnapshot) Rank1() LeaderboardEntry  { return s.Entries[0] }
func (s *LeaderboardSnapshot) Rank2() LeaderboardEntry  { return s.Entries[1] }
func (s *LeaderboardSnapshot) Rank3() LeaderboardEntry  { return s.Entries[2] }
func (s *LeaderboardSnapshot) Rank4() LeaderboardEntry  { return s.Entries[3] }
func (s *LeaderboardSnapshot) Rank5() LeaderboardEntry  { return s.Entries[4] }
func (s *LeaderboardSnapshot) Rank6() LeaderboardEntry  { return s.Entries[5] }
func (s *LeaderboardSnapshot) Rank7() LeaderboardEntry  { return s.Entries[6] }
func (s *LeaderboardSnapshot) Rank8() LeaderboardEntry  { return s.Entries[7] }
func (s *LeaderboardSnapshot) Rank9() LeaderboardEntry  { return s.Entries[8] }
func (s *LeaderboardSnapshot) Rank10() LeaderboardEntry { return s.Entries[9] }

// TopScoreRecord is one archived leaderboard observation.
type TopScoreRecord struct {
	ID          string
	Category    Category
	TopUsername string
	TopScore    float64
	FetchedAt   time.Time
}
