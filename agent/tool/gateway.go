package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"ristora/agent/contract"
	"ristora/booking"
	"ristora/menu"
)

const (
	confirmationTimeLayout = "2006-01-02 03:04 PM"
	bookingLineTimeLayout  = "2006-01-02 15:04"
)

// Gateway dispatches the four restaurant tools. Schema validation happens
// here; semantic parsing of argument text happens in the booking core.
type Gateway struct {
	bookings     *booking.Service
	availability *booking.AvailabilityEngine
	catalog      menu.Catalog

	specs  []contract.ToolSpec
	byName map[string]contract.ToolSpec
}

func NewGateway(bookings *booking.Service, availability *booking.AvailabilityEngine, catalog menu.Catalog) (*Gateway, error) {
	if bookings == nil {
		return nil, errors.New("booking service is required")
	}
	if availability == nil {
		return nil, errors.New("availability engine is required")
	}
	if catalog == nil {
		return nil, errors.New("menu catalog is required")
	}

	specs := Specs()
	byName := make(map[string]contract.ToolSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	return &Gateway{
		bookings:     bookings,
		availability: availability,
		catalog:      catalog,
		specs:        specs,
		byName:       byName,
	}, nil
}

func (g *Gateway) Specs() []contract.ToolSpec {
	return g.specs
}

// Execute validates the request against the tool's schema and invokes it.
// Every failure, including collaborator failures, comes back as a ToolResult
// with a typed error; nothing propagates.
func (g *Gateway) Execute(ctx context.Context, req contract.ToolRequest) contract.ToolResult {
	spec, ok := g.byName[req.Tool]
	if !ok {
		return contract.ToolResult{
			Tool: req.Tool,
			Err:  fmt.Errorf("%w: %q", contract.ErrUnknownTool, req.Tool),
		}
	}

	for _, p := range spec.Params {
		if !p.Required {
			continue
		}
		if strings.TrimSpace(req.Args[p.Name]) == "" {
			return contract.ToolResult{
				Tool: req.Tool,
				Err:  fmt.Errorf("%w: %q", contract.ErrMissingArgument, p.Name),
			}
		}
	}

	output, err := g.invoke(ctx, req)
	if err != nil {
		log.Debug().Str("tool", req.Tool).Err(err).Msg("tool invocation failed")
		return contract.ToolResult{Tool: req.Tool, Err: err}
	}

	log.Debug().Str("tool", req.Tool).Msg("tool invocation succeeded")
	return contract.ToolResult{Tool: req.Tool, Output: output}
}

func (g *Gateway) invoke(ctx context.Context, req contract.ToolRequest) (string, error) {
	switch req.Tool {
	case ToolGetMenu:
		items, err := g.catalog.List(ctx)
		if err != nil {
			return "", fmt.Errorf("fetching menu: %w", err)
		}
		return menu.Render(items), nil

	case ToolCheckAvailability:
		available, err := g.availability.Check(ctx, req.Args["date_time_str"], req.Args["num_people_str"])
		if err != nil {
			return "", err
		}
		if available {
			return "Available", nil
		}
		return "Not available", nil

	case ToolPerformBooking:
		b, err := g.bookings.CreateBooking(
			ctx,
			req.Args["customer_name"],
			req.Args["customer_email"],
			req.Args["date_time_str"],
			req.Args["num_people_str"],
		)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"Booking confirmed for %s on %s for %d people.",
			b.CustomerName,
			b.DateTime.Format(confirmationTimeLayout),
			b.NumPeople,
		), nil

	case ToolShowBookings:
		bookings, err := g.bookings.ListBookings(ctx, req.Args["customer_email"])
		if err != nil {
			return "", err
		}
		if len(bookings) == 0 {
			return "No bookings found for this customer.", nil
		}
		lines := make([]string, 0, len(bookings))
		for _, b := range bookings {
			lines = append(lines, fmt.Sprintf("%s: %d people", b.DateTime.Format(bookingLineTimeLayout), b.NumPeople))
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", fmt.Errorf("%w: %q", contract.ErrUnknownTool, req.Tool)
	}
}
