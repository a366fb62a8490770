package formatting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dinogen-tracker/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MsgUsernameRequired = "Username is required."
	MsgCategoryRequired = "Leaderboard category is required."
	MsgHistoryDisabled  = "Leaderboard history is not enabled on this bot."
	MsgNoHistory        = "No leaderboard snapshots have been recorded for this category yet."
	MsgServiceError     = "The Dinogen account service could not be reached. Try again later."
	MsgBadResponse      = "The Dinogen account service sent a response that could not be read."
	MsgShortLeaderboard = "This leaderboard has fewer than 10 entries right now."
	MsgInternalError    = "Something went wrong while handling this command."
)

// A Caser is stateful, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// CategoryTitle turns "survival_dino" into "Survival Dino".
func CategoryTitle(c domain.Category) string {
	return title(strings.ReplaceAll(string(c), "_", " "))
}

func MsgPlayerNotFound(username string) string {
	return fmt.Sprintf("Player **%s** was not found.", username)
}

func MsgInvalidRank(rank int) string {
	return fmt.Sprintf("Rank must be between 1 and %d, got %d.", domain.TopSize, rank)
}

// MsgForError maps a query failure to the message shown to the user.
func MsgForError(err error, username string, rank int) string {
	switch domain.KindOf(err) {
	case domain.KindPlayerNotFound:
		return MsgPlayerNotFound(username)
	case domain.KindInvalidArgument:
		return MsgInvalidRank(rank)
	case domain.KindIndexOutOfRange:
		return MsgShortLeaderboard
	case domain.KindDecode:
		return MsgBadResponse
	case domain.KindNetwork:
		return MsgServiceError
	default:
		return MsgInternalError
	}
}

func MsgBanStatus(username string, banned bool) string {
	if banned {
		return fmt.Sprintf("**%s** is banned from the account server.", username)
	}
	return fmt.Sprintf("**%s** is not banned.", username)
}

func MsgConnectedPlayers(count int) string {
	if count == 1 {
		return "There is **1** player connected to the US account server."
	}
	return fmt.Sprintf("There are **%d** players connected to the US account server.", count)
}

func Score(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func MsgProfile(p *domain.PlayerProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", p.Username)
	if p.IsBanned {
		b.WriteString(" (banned)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Level %d | XP %s | Kills %d | Deaths %d\n", p.Level, Score(p.XP), p.Kills, p.Deaths)
	for _, c := range p.Classes() {
		fmt.Fprintf(&b, "- %s: level %d, %d kills, %d deaths\n", title(c.Name), c.Level, c.Kills, c.Deaths)
	}
	return b.String()
}

func MsgLeaderboard(snap *domain.LeaderboardSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s leaderboard**\n", CategoryTitle(snap.Category))
	for i, e := range snap.Top() {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, e.Username, Score(e.Score))
	}
	return b.String()
}

func MsgTopHistory(category domain.Category, records []domain.TopScoreRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s leaders over time**\n", CategoryTitle(category))
	for _, r := range records {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", r.FetchedAt.UTC().Format(time.DateTime), r.TopUsername, Score(r.TopScore))
	}
	return b.String()
}
