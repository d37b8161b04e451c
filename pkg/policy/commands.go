package policy

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Pavua/krab/pkg/models"
)

// CommandName is the verb of an owner command.
type CommandName string

// Owner commands. All of them are owner-only; non-owners get a refusal.
const (
	CmdPolicy    CommandName = "policy"
	CmdCtx       CommandName = "ctx"
	CmdModel     CommandName = "model"
	CmdOps       CommandName = "ops"
	CmdMood      CommandName = "mood"
	CmdReactions CommandName = "reactions"
)

// Command is one parsed owner command.
type Command struct {
	Name CommandName
	Args []string
}

// ParseCommand parses "!verb arg arg" payloads. Returns false for anything
// that is not a command.
func ParseCommand(payload string) (Command, bool) {
	trimmed := strings.TrimSpace(payload)
	if !strings.HasPrefix(trimmed, "!") {
		return Command{}, false
	}
	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return Command{}, false
	}
	name := CommandName(strings.ToLower(fields[0]))
	switch name {
	case CmdPolicy, CmdCtx, CmdModel, CmdOps, CmdMood, CmdReactions:
		return Command{Name: name, Args: fields[1:]}, true
	}
	return Command{}, false
}

// fieldSetter validates a field value and returns the mutation to apply.
func fieldSetter(field, value string) (func(*models.Policy), error) {
	switch field {
	case "force_mode":
		mode := models.ForceMode(value)
		if !mode.Valid() {
			return nil, fmt.Errorf("force_mode must be auto, local or cloud")
		}
		return func(p *models.Policy) { p.ForceMode = mode }, nil
	case "persona":
		return func(p *models.Policy) { p.Persona = value }, nil
	case "reply_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("reply_enabled must be true or false")
		}
		return func(p *models.Policy) { p.ReplyEnabled = b }, nil
	case "group_reply_mode":
		mode := models.GroupReplyMode(value)
		switch mode {
		case models.GroupReplyMention, models.GroupReplyAll, models.GroupReplyOff:
			return func(p *models.Policy) { p.GroupReplyMode = mode }, nil
		}
		return nil, fmt.Errorf("group_reply_mode must be mention, all or off")
	case "rate_limit_per_min":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("rate_limit_per_min must be a positive integer")
		}
		return func(p *models.Policy) { p.RateLimitPerMin = n }, nil
	case "confirm_expensive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("confirm_expensive must be true or false")
		}
		return func(p *models.Policy) { p.ConfirmExpensive = b }, nil
	case "max_output_chars":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("max_output_chars must be a positive integer")
		}
		return func(p *models.Policy) { p.MaxOutputChars = n }, nil
	}
	return nil, fmt.Errorf("unknown policy field %q", field)
}

// SetField mutates one policy field by name, refreshing the override TTL.
// Invalid input leaves the stored policy untouched.
func (s *Store) SetField(ctx context.Context, chatID models.ChatID, field, value string) (models.Policy, error) {
	setter, err := fieldSetter(field, value)
	if err != nil {
		return s.Policy(ctx, chatID), err
	}
	return s.Mutate(ctx, chatID, setter), nil
}

// Describe renders a policy for the !policy show reply.
func Describe(p models.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "force_mode: %s\n", p.ForceMode)
	fmt.Fprintf(&b, "persona: %s\n", p.Persona)
	fmt.Fprintf(&b, "reply_enabled: %t\n", p.ReplyEnabled)
	fmt.Fprintf(&b, "group_reply_mode: %s\n", p.GroupReplyMode)
	fmt.Fprintf(&b, "rate_limit_per_min: %d\n", p.RateLimitPerMin)
	fmt.Fprintf(&b, "confirm_expensive: %t\n", p.ConfirmExpensive)
	fmt.Fprintf(&b, "max_output_chars: %d", p.MaxOutputChars)
	return b.String()
}
