package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/pkg/router"
	"github.com/Pavua/krab/pkg/stream"
)

// sendTimeout bounds the outbound message send. Terminal messages go out
// even when the request deadline has already expired.
const sendTimeout = 10 * time.Second

// Planner is the routing surface the executor drives.
type Planner interface {
	Preflight(req *models.Request) models.Preflight
	Execute(ctx context.Context, req *models.Request, pf models.Preflight) router.ExecResult
}

// Sender delivers outbound messages to the chat transport.
type Sender interface {
	SendMessage(ctx context.Context, chatID models.ChatID, text string) (messageID string, err error)
}

// UsageRecorder receives every finished attempt for accounting.
type UsageRecorder interface {
	RecordAttempt(ctx context.Context, a models.Attempt)
}

// Executor runs one request end to end: preflight, confirm gate, routed
// execution, exactly one terminal message, attempt accounting.
type Executor struct {
	planner Planner
	sender  Sender
	gate    *ConfirmGate
	replies *ReplyIndex
	ledger  UsageRecorder
	writer  *ops.AttemptWriter
	logger  *slog.Logger
}

// NewExecutor wires the executor. gate, replies, ledger and writer may be
// nil where the concern is not needed.
func NewExecutor(planner Planner, sender Sender, gate *ConfirmGate, replies *ReplyIndex, ledger UsageRecorder, writer *ops.AttemptWriter, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		planner: planner,
		sender:  sender,
		gate:    gate,
		replies: replies,
		ledger:  ledger,
		writer:  writer,
		logger:  logger.With("component", "executor"),
	}
}

var _ Runner = (*Executor)(nil)

// Run drives the request to its terminal outcome. Exactly one message goes
// to the chat: the reply, a confirm prompt, or a fallback line.
func (e *Executor) Run(ctx context.Context, req *models.Request) {
	pf := e.planner.Preflight(req)

	if pf.RequiresConfirm && e.gate != nil {
		e.gate.Hold(req)
		e.send(req.ChatID, confirmPrompt(pf))
		e.logger.Info("request held for confirmation",
			"request_id", req.ID, "chat_id", string(req.ChatID),
			"cost_estimate_usd", pf.MarginalCallCostUSD)
		return
	}

	res := e.planner.Execute(ctx, req, pf)

	text := res.Text
	if text == "" {
		text = stream.FallbackText(res.Code)
	}
	msgID := e.send(req.ChatID, text)

	if res.Outcome == models.OutcomeOK && e.replies != nil && len(req.Attempts) > 0 {
		last := req.Attempts[len(req.Attempts)-1]
		e.replies.Note(req.ChatID, msgID, ReplySource{
			Profile: req.Context.Profile,
			ModelID: last.Plan.ModelID,
		})
	}

	e.account(req)

	e.logger.Info("request finished",
		"request_id", req.ID,
		"chat_id", string(req.ChatID),
		"outcome", string(res.Outcome),
		"error_code", string(res.Code),
		"attempts", len(req.Attempts))
}

// send delivers one message on a fresh timeout, independent of the request
// deadline. Returns the transport message ID, empty on failure.
func (e *Executor) send(chatID models.ChatID, text string) string {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	msgID, err := e.sender.SendMessage(ctx, chatID, text)
	if err != nil {
		e.logger.Error("send failed", "chat_id", string(chatID), "error", err)
		return ""
	}
	return msgID
}

func (e *Executor) account(req *models.Request) {
	for _, a := range req.Attempts {
		if e.ledger != nil {
			e.ledger.RecordAttempt(context.Background(), a)
		}
		if e.writer != nil {
			e.writer.Enqueue(ops.AttemptRow{
				RequestID: req.ID,
				ChatID:    req.ChatID,
				Attempt:   a,
			})
		}
	}
}

func confirmPrompt(pf models.Preflight) string {
	model := ""
	if pf.Plan != nil {
		model = pf.Plan.ModelID
	}
	return fmt.Sprintf(
		"This needs the paid model %s (~$%.3f per call). Reply \"yes\" within 60s to proceed.",
		model, pf.MarginalCallCostUSD)
}
