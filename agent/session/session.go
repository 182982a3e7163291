// Package session holds the conversation turn loop: ordered message history
// plus the bounded Planner/tool iteration that answers one user message.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ristora/agent/contract"
	"ristora/agent/prompt"
)

// ForcedReply is emitted when a turn exhausts its iteration or wall-clock
// budget before the Planner produces a final answer.
const ForcedReply = "Agent stopped due to iteration limit or time limit."

const correctiveMessage = "Your previous response could not be parsed. " +
	"Reply with either a valid tool call or a final answer for the customer."

type Config struct {
	RestaurantName   string        `envconfig:"RESTAURANT_NAME" split_words:"true" default:"The Good Restaurant"`
	MaxIterations    int           `envconfig:"MAX_ITERATIONS" split_words:"true" default:"3"`
	MaxExecutionTime time.Duration `envconfig:"MAX_EXECUTION_TIME" split_words:"true" default:"30s"`
}

func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return errors.New("max iterations must be positive")
	}
	if c.MaxExecutionTime <= 0 {
		return errors.New("max execution time must be positive")
	}
	return nil
}

// Session processes one turn at a time, synchronously. The history is owned
// by the session and discarded with it; it is seeded with a single system
// message carrying the restaurant identity.
type Session struct {
	planner contract.Planner
	tools   contract.ToolGateway

	history       []contract.Message
	maxIterations int
	maxExecution  time.Duration
}

func New(planner contract.Planner, tools contract.ToolGateway, cfg Config) (*Session, error) {
	if planner == nil {
		return nil, errors.New("planner is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		planner: planner,
		tools:   tools,
		history: []contract.Message{
			{Role: contract.RoleSystem, Content: prompt.System(cfg.RestaurantName)},
		},
		maxIterations: cfg.MaxIterations,
		maxExecution:  cfg.MaxExecutionTime,
	}, nil
}

// History returns a copy of the session's ordered message history.
func (s *Session) History() []contract.Message {
	out := make([]contract.Message, len(s.history))
	copy(out, s.history)
	return out
}

// HandleTurn appends the user message, runs the bounded Planner loop, and
// returns the reply (also appended). The Planner may spend at most
// MaxIterations tool invocations and MaxExecutionTime wall-clock; exhausting
// either budget forces a best-effort reply instead of an error. A malformed
// Planner output consumes one iteration and feeds a corrective message back.
func (s *Session) HandleTurn(ctx context.Context, userText string) (string, error) {
	s.history = append(s.history, contract.Message{Role: contract.RoleHuman, Content: userText})

	ctx, cancel := context.WithTimeout(ctx, s.maxExecution)
	defer cancel()

	reply, err := s.runTurn(ctx)
	if err != nil {
		return "", err
	}

	s.history = append(s.history, contract.Message{Role: contract.RoleAI, Content: reply})
	return reply, nil
}

func (s *Session) runTurn(ctx context.Context) (string, error) {
	var steps []contract.ToolExchange
	used := 0

	for {
		if ctx.Err() != nil {
			log.Warn().Msg("turn wall-clock budget exhausted")
			return ForcedReply, nil
		}

		decision, err := s.planner.Plan(ctx, contract.PlannerRequest{
			Messages: s.history,
			Tools:    s.tools.Specs(),
			Steps:    steps,
		})
		if err != nil {
			if errors.Is(err, contract.ErrMalformedToolCall) && used < s.maxIterations {
				used++
				steps = append(steps, contract.ToolExchange{Result: correctiveMessage})
				continue
			}
			if errors.Is(err, contract.ErrMalformedToolCall) {
				return ForcedReply, nil
			}
			return "", fmt.Errorf("planner: %w", err)
		}

		if len(decision.ToolCalls) == 0 {
			return decision.FinalAnswer, nil
		}
		if used >= s.maxIterations {
			log.Warn().Int("used", used).Msg("turn iteration budget exhausted")
			return ForcedReply, nil
		}

		for _, call := range decision.ToolCalls {
			if used >= s.maxIterations || ctx.Err() != nil {
				break
			}
			result := s.tools.Execute(ctx, call.Request)
			steps = append(steps, contract.ToolExchange{Call: call, Result: result.Text()})
			used++
		}
	}
}
