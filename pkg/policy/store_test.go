package policy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

func testDefaults() *config.Defaults {
	return &config.Defaults{
		OwnerPrincipal: "owner-1",
		Persona:        "default",
		Personas:       map[string]string{"default": "You are concise.", "pirate": "Arr."},
		ForceMode:      models.ForceAuto,
		GroupReplyMode: models.GroupReplyMention,
		MaxOutputChars: 4000,
		PolicyTTLHours: 24,
	}
}

func TestPolicyDefaultsWithoutOverride(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)

	p := s.Policy(context.Background(), "c1")

	assert.Equal(t, models.ForceAuto, p.ForceMode)
	assert.True(t, p.ReplyEnabled)
	assert.Equal(t, 4000, p.MaxOutputChars)
}

func TestOverrideExpiresBackToDefaults(t *testing.T) {
	now := time.Now()
	s := NewStore(testDefaults(), nil, nil, func() time.Time { return now })

	s.Mutate(context.Background(), "c1", func(p *models.Policy) {
		p.ForceMode = models.ForceLocal
	})
	assert.Equal(t, models.ForceLocal, s.Policy(context.Background(), "c1").ForceMode)
	assert.True(t, s.HasOverride(context.Background(), "c1"))

	now = now.Add(25 * time.Hour)
	assert.Equal(t, models.ForceAuto, s.Policy(context.Background(), "c1").ForceMode)
	assert.False(t, s.HasOverride(context.Background(), "c1"))
}

func TestSnapshotIsFrozen(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)
	ctx := context.Background()

	snap := s.Snapshot(ctx, "c1")
	s.Mutate(ctx, "c1", func(p *models.Policy) { p.ForceMode = models.ForceCloud })

	assert.Equal(t, models.ForceAuto, snap.ForceMode, "snapshot must not see later mutations")
	assert.Equal(t, models.ForceCloud, s.Policy(ctx, "c1").ForceMode)
}

func TestSetFieldValidation(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)
	ctx := context.Background()

	p, err := s.SetField(ctx, "c1", "force_mode", "local")
	require.NoError(t, err)
	assert.Equal(t, models.ForceLocal, p.ForceMode)

	_, err = s.SetField(ctx, "c1", "force_mode", "turbo")
	assert.Error(t, err)
	assert.Equal(t, models.ForceLocal, s.Policy(ctx, "c1").ForceMode, "invalid input must not change stored policy")

	_, err = s.SetField(ctx, "c1", "rate_limit_per_min", "-3")
	assert.Error(t, err)

	_, err = s.SetField(ctx, "c1", "no_such_field", "1")
	assert.Error(t, err)
}

func TestClearRevertsImmediately(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)
	ctx := context.Background()

	s.Mutate(ctx, "c1", func(p *models.Policy) { p.ReplyEnabled = false })
	require.False(t, s.Policy(ctx, "c1").ReplyEnabled)

	s.Clear(ctx, "c1")
	assert.True(t, s.Policy(ctx, "c1").ReplyEnabled)
}

func TestParseCommand(t *testing.T) {
	cmd, ok := ParseCommand("!policy set force_mode local")
	require.True(t, ok)
	assert.Equal(t, CmdPolicy, cmd.Name)
	assert.Equal(t, []string{"set", "force_mode", "local"}, cmd.Args)

	_, ok = ParseCommand("just a message with ! inside")
	assert.False(t, ok)

	_, ok = ParseCommand("!unknowncmd arg")
	assert.False(t, ok)

	cmd, ok = ParseCommand("  !REACTIONS off ")
	require.True(t, ok)
	assert.Equal(t, CmdReactions, cmd.Name)
	assert.Equal(t, []string{"off"}, cmd.Args)
}

func TestShouldReplyGroupModes(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)
	b := NewBuilder(testDefaults(), s, nil, nil)
	ctx := context.Background()

	direct := models.Event{ChatID: "c1", Kind: models.EventKindText, Payload: "hi"}
	ok, _ := b.ShouldReply(ctx, direct)
	assert.True(t, ok)

	group := models.Event{ChatID: "g1", Kind: models.EventKindText, Payload: "hi", IsGroup: true}
	ok, _ = b.ShouldReply(ctx, group)
	assert.False(t, ok, "mention mode must ignore unaddressed group messages")

	group.Mentioned = true
	ok, _ = b.ShouldReply(ctx, group)
	assert.True(t, ok)

	s.Mutate(ctx, "g1", func(p *models.Policy) { p.GroupReplyMode = models.GroupReplyOff })
	ok, _ = b.ShouldReply(ctx, group)
	assert.False(t, ok)

	s.Mutate(ctx, "g1", func(p *models.Policy) { p.GroupReplyMode = models.GroupReplyAll })
	group.Mentioned = false
	ok, _ = b.ShouldReply(ctx, group)
	assert.True(t, ok)

	reaction := models.Event{ChatID: "c1", Kind: models.EventKindReaction, Emoji: "👍"}
	ok, _ = b.ShouldReply(ctx, reaction)
	assert.False(t, ok)
}

func TestBuildContext(t *testing.T) {
	s := NewStore(testDefaults(), nil, nil, nil)
	b := NewBuilder(testDefaults(), s, nil, nil)
	ctx := context.Background()

	ev := models.Event{
		ChatID:          "c1",
		AuthorID:        "owner-1",
		Kind:            models.EventKindText,
		Payload:         "please review this diff",
		ReplyToAuthorID: "bob",
		ForwardFrom:     "carol",
	}
	c := b.Build(ctx, ev)

	assert.True(t, c.IsOwner)
	assert.Equal(t, "owner-1", c.Author)
	assert.Equal(t, "bob", c.ReplyToAuthor)
	assert.Equal(t, "carol", c.ForwardFrom)
	assert.Equal(t, models.ProfileReview, c.Profile)
	assert.Equal(t, "You are concise.", c.Persona)
	assert.Equal(t, models.ToneNeutral, c.Mood.Tone)
}

func TestClassifyProfile(t *testing.T) {
	assert.Equal(t, models.ProfileSecurity, ClassifyProfile("is CVE-2024-1234 exploitable here?"))
	assert.Equal(t, models.ProfileInfra, ClassifyProfile("write a terraform module for this"))
	assert.Equal(t, models.ProfileReasoning, ClassifyProfile("prove it step by step"))
	assert.Equal(t, models.ProfileChat, ClassifyProfile("how was your day"))
}
