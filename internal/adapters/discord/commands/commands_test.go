package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"dinogen-tracker/internal/adapters/discord/formatting"
	"dinogen-tracker/internal/config"
	"dinogen-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type mockLookup struct {
	fetchPlayerFunc      func(ctx context.Context, username string) (*domain.PlayerProfile, error)
	fetchLeaderboardFunc func(ctx context.Context, category domain.Category) (*domain.LeaderboardSnapshot, error)
	resolveEntryFunc     func(ctx context.Context, snap *domain.LeaderboardSnapshot, rank int) (*domain.PlayerProfile, error)
	connectedFunc        func(ctx context.Context) (int, error)
	isBannedFunc         func(ctx context.Context, username string) (bool, error)
}

func (m *mockLookup) FetchPlayer(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	if m.fetchPlayerFunc != nil {
		return m.fetchPlayerFunc(ctx, username)
	}
	return &domain.PlayerProfile{Username: username}, nil
}

func (m *mockLookup) FetchLeaderboard(ctx context.Context, category domain.Category) (*domain.LeaderboardSnapshot, error) {
	if m.fetchLeaderboardFunc != nil {
		return m.fetchLeaderboardFunc(ctx, category)
	}
	return testSnapshot(category), nil
}

func (m *mockLookup) ResolveEntry(ctx context.Context, snap *domain.LeaderboardSnapshot, rank int) (*domain.PlayerProfile, error) {
	if m.resolveEntryFunc != nil {
		return m.resolveEntryFunc(ctx, snap, rank)
	}
	entry, err := snap.Rank(rank)
	if err != nil {
		return nil, err
	}
	return &domain.PlayerProfile{Username: entry.Username}, nil
}

func (m *mockLookup) FetchConnectedPlayerCount(ctx context.Context) (int, error) {
	if m.connectedFunc != nil {
		return m.connectedFunc(ctx)
	}
	return 0, nil
}

func (m *mockLookup) IsPlayerBanned(ctx context.Context, username string) (bool, error) {
	if m.isBannedFunc != nil {
		return m.isBannedFunc(ctx, username)
	}
	return false, nil
}

type mockArchive struct {
	recorded    []*domain.LeaderboardSnapshot
	recordErr   error
	history     []domain.TopScoreRecord
	historyErr  error
	gotLimit    int
	gotCategory domain.Category
}

func (m *mockArchive) RecordLeaderboard(ctx context.Context, snap *domain.LeaderboardSnapshot) error {
	m.recorded = append(m.recorded, snap)
	return m.recordErr
}

func (m *mockArchive) TopScoreHistory(ctx context.Context, category domain.Category, limit int) ([]domain.TopScoreRecord, error) {
	m.gotCategory = category
	m.gotLimit = limit
	return m.history, m.historyErr
}

func (m *mockArchive) Close() {}

type mockDiscordSession struct {
	interactionRespondFunc func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	editFunc               func(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) error

	lastInteractionResponse *discordgo.InteractionResponse
	lastEdit                *discordgo.WebhookEdit
	responds                int
	edits                   int
}

func (m *mockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, opts ...discordgo.RequestOption) error {
	m.lastInteractionResponse = resp
	m.responds++
	if m.interactionRespondFunc != nil {
		return m.interactionRespondFunc(interaction, resp)
	}
	return nil
}

func (m *mockDiscordSession) InteractionResponseEdit(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.lastEdit = edit
	m.edits++
	if m.editFunc != nil {
		return nil, m.editFunc(interaction, edit)
	}
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) editedContent(t *testing.T) string {
	t.Helper()
	if m.lastEdit == nil || m.lastEdit.Content == nil {
		t.Fatal("expected the deferred response to be edited")
	}
	return *m.lastEdit.Content
}

func testSnapshot(category domain.Category) *domain.LeaderboardSnapshot {
	entries := make([]domain.LeaderboardEntry, domain.TopSize)
	for i := range entries {
		entries[i] = domain.LeaderboardEntry{Username: fmt.Sprintf("p%d", i+1), Score: float64(100 - i)}
	}
	snap, _ := domain.NewLeaderboardSnapshot(category, entries, time.Now())
	return snap
}

func newTestHandler(lookup *mockLookup, archive *mockArchive) *BotHandler {
	h := &BotHandler{
		Config: &config.Config{HistoryLimit: 5},
		Lookup: lookup,
	}
	if archive != nil {
		h.Archive = archive
	}
	return h
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func makeCommandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "guild-1",
			Data:    discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
		},
	}
}

func assertDeferred(t *testing.T, session *mockDiscordSession) {
	t.Helper()
	if session.lastInteractionResponse == nil {
		t.Fatal("expected an interaction response")
	}
	if session.lastInteractionResponse.Type != discordgo.InteractionResponseDeferredChannelMessageWithSource {
		t.Errorf("expected deferred response, got type %d", session.lastInteractionResponse.Type)
	}
}

func TestPlayer_Success(t *testing.T) {
	lookup := &mockLookup{
		fetchPlayerFunc: func(ctx context.Context, username string) (*domain.PlayerProfile, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected a deadline on the query context")
			}
			return &domain.PlayerProfile{Username: username, Level: 12, IsBanned: true}, nil
		},
	}
	session := &mockDiscordSession{}

	newTestHandler(lookup, nil).Player(session, makeCommandInteraction(CmdPlayer, stringOpt("username", "RexHunter")))

	assertDeferred(t, session)
	content := session.editedContent(t)
	if !strings.Contains(content, "**RexHunter** (banned)") || !strings.Contains(content, "Level 12") {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestPlayer_MissingUsername(t *testing.T) {
	session := &mockDiscordSession{}

	newTestHandler(&mockLookup{}, nil).Player(session, makeCommandInteraction(CmdPlayer))

	if session.lastInteractionResponse.Data.Content != formatting.MsgUsernameRequired {
		t.Errorf("expected '%s', got '%s'", formatting.MsgUsernameRequired, session.lastInteractionResponse.Data.Content)
	}
	if session.lastInteractionResponse.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected ephemeral error message")
	}
	if session.lastEdit != nil {
		t.Error("expected no deferred edit")
	}
}

func TestPlayer_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("fetch player: %w", domain.ErrPlayerNotFound), formatting.MsgPlayerNotFound("ghost")},
		{"network", fmt.Errorf("%w: timeout", domain.ErrNetwork), formatting.MsgServiceError},
		{"decode", fmt.Errorf("%w: eof", domain.ErrDecode), formatting.MsgBadResponse},
		{"unknown", errors.New("boom"), formatting.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &mockLookup{
				fetchPlayerFunc: func(ctx context.Context, username string) (*domain.PlayerProfile, error) {
					return nil, tt.err
				},
			}
			session := &mockDiscordSession{}

			newTestHandler(lookup, nil).Player(session, makeCommandInteraction(CmdPlayer, stringOpt("username", "ghost")))

			if got := session.editedContent(t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBanned(t *testing.T) {
	tests := []struct {
		name   string
		banned bool
		err    error
		want   string
	}{
		{"banned", true, nil, formatting.MsgBanStatus("cheater", true)},
		{"clean", false, nil, formatting.MsgBanStatus("cheater", false)},
		{"unknown player", false, domain.ErrPlayerNotFound, formatting.MsgPlayerNotFound("cheater")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := &mockLookup{
				isBannedFunc: func(ctx context.Context, username string) (bool, error) {
					return tt.banned, tt.err
				},
			}
			session := &mockDiscordSession{}

			newTestHandler(lookup, nil).Banned(session, makeCommandInteraction(CmdBanned, stringOpt("username", "cheater")))

			if got := session.editedContent(t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLeaderboard_TopTen(t *testing.T) {
	archive := &mockArchive{}
	var gotCategory domain.Category
	lookup := &mockLookup{
		fetchLeaderboardFunc: func(ctx context.Context, c domain.Category) (*domain.LeaderboardSnapshot, error) {
			gotCategory = c
			return testSnapshot(c), nil
		},
	}
	session := &mockDiscordSession{}

	newTestHandler(lookup, archive).Leaderboard(session, makeCommandInteraction(CmdLeaderboard, stringOpt("category", "survival_dino")))

	if gotCategory != domain.CategorySurvivalDino {
		t.Errorf("expected survival_dino, got %s", gotCategory)
	}
	content := session.editedContent(t)
	if !strings.Contains(content, "Survival Dino leaderboard") || !strings.Contains(content, "1. p1 - 100") {
		t.Errorf("unexpected content: %s", content)
	}
	if len(archive.recorded) != 1 {
		t.Errorf("expected snapshot to be archived once, got %d", len(archive.recorded))
	}
}

func TestLeaderboard_ByRank(t *testing.T) {
	var gotRank int
	lookup := &mockLookup{
		resolveEntryFunc: func(ctx context.Context, snap *domain.LeaderboardSnapshot, rank int) (*domain.PlayerProfile, error) {
			gotRank = rank
			entry, _ := snap.Rank(rank)
			return &domain.PlayerProfile{Username: entry.Username, Level: 3}, nil
		},
	}
	session := &mockDiscordSession{}

	newTestHandler(lookup, nil).Leaderboard(session, makeCommandInteraction(CmdLeaderboard, stringOpt("category", "xp"), intOpt("rank", 3)))

	if gotRank != 3 {
		t.Errorf("expected rank 3, got %d", gotRank)
	}
	if content := session.editedContent(t); !strings.Contains(content, "**p3**") {
		t.Errorf("expected profile of p3, got: %s", content)
	}
}

func TestLeaderboard_InvalidRank(t *testing.T) {
	session := &mockDiscordSession{}

	newTestHandler(&mockLookup{}, nil).Leaderboard(session, makeCommandInteraction(CmdLeaderboard, stringOpt("category", "xp"), intOpt("rank", 11)))

	if got, want := session.editedContent(t), formatting.MsgInvalidRank(11); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLeaderboard_ShortBoard(t *testing.T) {
	archive := &mockArchive{}
	lookup := &mockLookup{
		fetchLeaderboardFunc: func(ctx context.Context, c domain.Category) (*domain.LeaderboardSnapshot, error) {
			return nil, fmt.Errorf("fetch leaderboard: %w", domain.ErrIndexOutOfRange)
		},
	}
	session := &mockDiscordSession{}

	newTestHandler(lookup, archive).Leaderboard(session, makeCommandInteraction(CmdLeaderboard, stringOpt("category", "kills")))

	if got := session.editedContent(t); got != formatting.MsgShortLeaderboard {
		t.Errorf("expected %q, got %q", formatting.MsgShortLeaderboard, got)
	}
	if len(archive.recorded) != 0 {
		t.Error("failed fetch must not be archived")
	}
}

func TestLeaderboard_ArchiveFailureStillReplies(t *testing.T) {
	archive := &mockArchive{recordErr: errors.New("db down")}
	session := &mockDiscordSession{}

	newTestHandler(&mockLookup{}, archive).Leaderboard(session, makeCommandInteraction(CmdLeaderboard, stringOpt("category", "kills")))

	if content := session.editedContent(t); !strings.Contains(content, "Kills leaderboard") {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestLeaderboard_MissingCategory(t *testing.T) {
	session := &mockDiscordSession{}

	newTestHandler(&mockLookup{}, nil).Leaderboard(session, makeCommandInteraction(CmdLeaderboard))

	if session.lastInteractionResponse.Data.Content != formatting.MsgCategoryRequired {
		t.Errorf("expected '%s', got '%s'", formatting.MsgCategoryRequired, session.lastInteractionResponse.Data.Content)
	}
}

func TestOnline(t *testing.T) {
	lookup := &mockLookup{
		connectedFunc: func(ctx context.Context) (int, error) { return 42, nil },
	}
	session := &mockDiscordSession{}

	newTestHandler(lookup, nil).Online(session, makeCommandInteraction(CmdOnline))

	if got := session.editedContent(t); got != formatting.MsgConnectedPlayers(42) {
		t.Errorf("unexpected content: %s", got)
	}
}

func TestTopHistory_Disabled(t *testing.T) {
	session := &mockDiscordSession{}

	newTestHandler(&mockLookup{}, nil).TopHistory(session, makeCommandInteraction(CmdTopHistory, stringOpt("category", "xp")))

	if session.lastInteractionResponse.Data.Content != formatting.MsgHistoryDisabled {
		t.Errorf("expected '%s', got '%s'", formatting.MsgHistoryDisabled, session.lastInteractionResponse.Data.Content)
	}
	if session.lastInteractionResponse.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected ephemeral message")
	}
}

func TestTopHistory(t *testing.T) {
	tests := []struct {
		name    string
		archive *mockArchive
		want    string
	}{
		{
			name: "records",
			archive: &mockArchive{history: []domain.TopScoreRecord{
				{TopUsername: "rex", TopScore: 10, FetchedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			}},
			want: "rex (10)",
		},
		{
			name:    "empty",
			archive: &mockArchive{},
			want:    formatting.MsgNoHistory,
		},
		{
			name:    "error",
			archive: &mockArchive{historyErr: errors.New("db down")},
			want:    formatting.MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &mockDiscordSession{}

			newTestHandler(&mockLookup{}, tt.archive).TopHistory(session, makeCommandInteraction(CmdTopHistory, stringOpt("category", "survival_zombie")))

			if got := session.editedContent(t); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in %q", tt.want, got)
			}
			if tt.archive.gotCategory != domain.CategorySurvivalZombie || tt.archive.gotLimit != 5 {
				t.Errorf("unexpected query: %s limit %d", tt.archive.gotCategory, tt.archive.gotLimit)
			}
		})
	}
}

func TestRun_DeferFailure(t *testing.T) {
	called := false
	lookup := &mockLookup{
		connectedFunc: func(ctx context.Context) (int, error) {
			called = true
			return 1, nil
		},
	}
	session := &mockDiscordSession{
		interactionRespondFunc: func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
			return errors.New("unknown interaction")
		},
	}

	newTestHandler(lookup, nil).Online(session, makeCommandInteraction(CmdOnline))

	if called {
		t.Error("query should not run when the interaction cannot be acknowledged")
	}
	if session.lastEdit != nil {
		t.Error("expected no edit")
	}
}

func TestRun_PanicAfterDeferEditsReply(t *testing.T) {
	lookup := &mockLookup{
		fetchPlayerFunc: func(ctx context.Context, username string) (*domain.PlayerProfile, error) {
			panic("class table not loaded")
		},
	}
	session := &mockDiscordSession{
		interactionRespondFunc: func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
			if resp.Type != discordgo.InteractionResponseDeferredChannelMessageWithSource {
				return errors.New("interaction has already been acknowledged")
			}
			return nil
		},
	}

	handler := Chain(newTestHandler(lookup, nil).Player, WithRecover(CmdPlayer))
	handler(session, makeCommandInteraction(CmdPlayer, stringOpt("username", "rex")))

	if session.responds != 1 {
		t.Errorf("expected only the deferral to be sent as a response, got %d", session.responds)
	}
	assertDeferred(t, session)
	if got := session.editedContent(t); got != formatting.MsgInternalError {
		t.Errorf("expected %q, got %q", formatting.MsgInternalError, got)
	}
}

func TestHistoryLimit_Default(t *testing.T) {
	h := &BotHandler{}
	if h.historyLimit() != 10 {
		t.Errorf("expected default limit 10, got %d", h.historyLimit())
	}
}
