package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/mood"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/router"
)

// HealthView supplies the cached health snapshot for !ops health.
type HealthView interface {
	Snapshot() models.HealthSnapshot
}

// Canceller aborts a chat's in-flight request for !ops cancel.
type Canceller interface {
	Cancel(chatID models.ChatID) bool
}

// CommandHandler executes owner commands against the live services and
// renders a plain-text reply. Every method assumes the caller already
// verified ownership.
type CommandHandler struct {
	policies  *policy.Store
	backends  *config.BackendRegistry
	tierState *router.CloudTierState
	moods     *mood.Engine
	reactor   *mood.AutoReactor
	ledger    *ops.UsageLedger
	alerts    *ops.AlertManager
	health    HealthView
	canceller Canceller
	logger    *slog.Logger
}

// NewCommandHandler wires the command surface. Any dependency may be nil;
// the matching subcommands then report unavailability.
func NewCommandHandler(policies *policy.Store, backends *config.BackendRegistry, tierState *router.CloudTierState, moods *mood.Engine, reactor *mood.AutoReactor, ledger *ops.UsageLedger, alerts *ops.AlertManager, health HealthView, canceller Canceller, logger *slog.Logger) *CommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandHandler{
		policies:  policies,
		backends:  backends,
		tierState: tierState,
		moods:     moods,
		reactor:   reactor,
		ledger:    ledger,
		alerts:    alerts,
		health:    health,
		canceller: canceller,
		logger:    logger.With("component", "commands"),
	}
}

// Execute runs one command event and returns the reply text. Empty reply
// means nothing to say.
func (h *CommandHandler) Execute(ctx context.Context, ev models.Event) string {
	cmd, ok := policy.ParseCommand(ev.Payload)
	if !ok {
		return ""
	}
	h.logger.Info("owner command", "chat_id", string(ev.ChatID), "command", string(cmd.Name), "args", cmd.Args)

	switch cmd.Name {
	case policy.CmdPolicy:
		return h.policyCmd(ctx, ev.ChatID, cmd.Args)
	case policy.CmdCtx:
		return h.ctxCmd(ctx, ev.ChatID, cmd.Args)
	case policy.CmdModel:
		return h.modelCmd(ctx, ev.ChatID, cmd.Args)
	case policy.CmdOps:
		return h.opsCmd(ev.ChatID, cmd.Args)
	case policy.CmdMood:
		return h.moodCmd(ev.ChatID)
	case policy.CmdReactions:
		return h.reactionsCmd(cmd.Args)
	}
	return ""
}

func (h *CommandHandler) policyCmd(ctx context.Context, chatID models.ChatID, args []string) string {
	if h.policies == nil {
		return "policy store unavailable"
	}
	switch {
	case len(args) == 0 || args[0] == "show":
		return policy.Describe(h.policies.Policy(ctx, chatID))
	case args[0] == "set" && len(args) >= 3:
		p, err := h.policies.SetField(ctx, chatID, args[1], strings.Join(args[2:], " "))
		if err != nil {
			return "error: " + err.Error()
		}
		return "updated\n" + policy.Describe(p)
	case args[0] == "clear":
		h.policies.Clear(ctx, chatID)
		return "policy override cleared, defaults restored"
	}
	return "usage: !policy [show | set <field> <value> | clear]"
}

func (h *CommandHandler) ctxCmd(ctx context.Context, chatID models.ChatID, args []string) string {
	if h.policies == nil {
		return "policy store unavailable"
	}
	if len(args) > 0 && args[0] == "clear" {
		h.policies.Clear(ctx, chatID)
		return "chat context reset"
	}
	snap := h.policies.Snapshot(ctx, chatID)
	override := "defaults"
	if h.policies.HasOverride(ctx, chatID) {
		override = "override active (24h TTL from last change)"
	}
	return fmt.Sprintf("source: %s\n%s", override, policy.Describe(snap.Policy))
}

func (h *CommandHandler) modelCmd(ctx context.Context, chatID models.ChatID, args []string) string {
	if len(args) == 0 || args[0] == "status" {
		return h.modelStatus(ctx, chatID)
	}
	switch args[0] {
	case "local", "cloud", "auto":
		if h.policies == nil {
			return "policy store unavailable"
		}
		p, err := h.policies.SetField(ctx, chatID, "force_mode", args[0])
		if err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprintf("force_mode set to %s", p.ForceMode)
	case "reset":
		if h.tierState == nil {
			return "router unavailable"
		}
		h.tierState.Reset()
		return "cloud tier reset to free"
	}
	return "usage: !model [status | local | cloud | auto | reset]"
}

func (h *CommandHandler) modelStatus(ctx context.Context, chatID models.ChatID) string {
	var b strings.Builder
	if h.policies != nil {
		p := h.policies.Policy(ctx, chatID)
		fmt.Fprintf(&b, "force_mode: %s\n", p.ForceMode)
	}
	if h.tierState != nil {
		tier := "free"
		if h.tierState.OnPaid() {
			tier = "paid"
		}
		fmt.Fprintf(&b, "cloud tier: %s\n", tier)
	}
	if h.backends != nil {
		for _, id := range h.backends.IDs() {
			bc, err := h.backends.Get(id)
			if err != nil {
				continue
			}
			state := ""
			if h.health != nil {
				snap := h.health.Snapshot()
				state = " [" + string(snap.Backend(id).State) + "]"
			}
			fmt.Fprintf(&b, "%s (%s)%s: %s\n", id, bc.Tier, state, strings.Join(bc.Models, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *CommandHandler) opsCmd(chatID models.ChatID, args []string) string {
	if len(args) == 0 {
		args = []string{"usage"}
	}
	switch args[0] {
	case "usage":
		if h.ledger == nil {
			return "usage ledger unavailable"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "free calls today: %d\n", h.ledger.FreeCallsToday())
		fmt.Fprintf(&b, "paid spend this month: $%.2f", h.ledger.PaidSpendMonthUSD())
		return b.String()
	case "alerts":
		if h.alerts == nil {
			return "alert manager unavailable"
		}
		list := h.alerts.List(false)
		if len(list) == 0 {
			return "no active alerts"
		}
		var b strings.Builder
		for _, a := range list {
			fmt.Fprintf(&b, "[%s] %s x%d: %s\n", a.Severity, a.Code, a.Count, a.Message)
		}
		return strings.TrimRight(b.String(), "\n")
	case "ack", "unack":
		if h.alerts == nil {
			return "alert manager unavailable"
		}
		if len(args) < 2 {
			return fmt.Sprintf("usage: !ops %s <code>", args[0])
		}
		var ok bool
		if args[0] == "ack" {
			ok = h.alerts.Ack(args[1])
		} else {
			ok = h.alerts.Unack(args[1])
		}
		if !ok {
			return fmt.Sprintf("no alert with code %q", args[1])
		}
		return args[0] + "ed " + args[1]
	case "health":
		if h.health == nil {
			return "health supervisor unavailable"
		}
		snap := h.health.Snapshot()
		var b strings.Builder
		for _, id := range sortedBackendIDs(snap.Backends) {
			bh := snap.Backends[id]
			fmt.Fprintf(&b, "%s: %s", id, bh.State)
			if bh.LastError != "" {
				fmt.Fprintf(&b, " (%s)", bh.LastError)
			}
			b.WriteString("\n")
		}
		if snap.NextAction != "" {
			fmt.Fprintf(&b, "next: %s\n", snap.NextAction)
		}
		fmt.Fprintf(&b, "goroutines: %d", snap.Resources.NumGoroutine)
		return b.String()
	case "cancel":
		if h.canceller == nil {
			return "dispatcher unavailable"
		}
		if h.canceller.Cancel(chatID) {
			return "in-flight request cancelled"
		}
		return "nothing in flight for this chat"
	}
	return "usage: !ops [usage | alerts | ack <code> | unack <code> | health | cancel]"
}

func sortedBackendIDs(m map[string]models.BackendHealth) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (h *CommandHandler) moodCmd(chatID models.ChatID) string {
	if h.moods == nil {
		return "mood engine unavailable"
	}
	p := h.moods.Profile(chatID)
	if p.LastUpdate.IsZero() {
		return fmt.Sprintf("mood: %s", p.Tone)
	}
	return fmt.Sprintf("mood: %s (last reaction %s)", p.Tone, p.LastUpdate.Format("15:04:05"))
}

func (h *CommandHandler) reactionsCmd(args []string) string {
	if h.reactor == nil {
		return "auto-reactions unavailable"
	}
	if len(args) == 0 {
		if h.reactor.Enabled() {
			return "auto-reactions: on"
		}
		return "auto-reactions: off"
	}
	switch args[0] {
	case "on":
		h.reactor.SetEnabled(true)
		return "auto-reactions enabled"
	case "off":
		h.reactor.SetEnabled(false)
		return "auto-reactions disabled"
	}
	return "usage: !reactions [on | off]"
}
