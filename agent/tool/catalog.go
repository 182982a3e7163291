// Package tool exposes the booking core to the Planner as named,
// schema-validated callable actions.
package tool

import "ristora/agent/contract"

const (
	ToolGetMenu           = "get_menu"
	ToolCheckAvailability = "check_availability"
	ToolPerformBooking    = "perform_booking"
	ToolShowBookings      = "show_bookings"
)

func Specs() []contract.ToolSpec {
	return []contract.ToolSpec{
		{
			Name:        ToolGetMenu,
			Description: "Get the menu of the restaurant.",
		},
		{
			Name: ToolCheckAvailability,
			Description: "Check if a table is available for a given date/time and number of guests. " +
				"Returns 'Available' if the requested guests fit the remaining capacity of the 1-hour slot, " +
				"'Not available' otherwise. Checking reserves nothing.",
			Params: []contract.ToolParam{
				{
					Name:        "date_time_str",
					Type:        "string",
					Description: "Natural language date/time, e.g. 'tomorrow 7PM' or '9th of December 8PM'. Should resolve to a future date/time.",
					Required:    true,
				},
				{
					Name:        "num_people_str",
					Type:        "string",
					Description: "Number of guests as a positive integer in string form, e.g. '4'.",
					Required:    true,
				},
			},
		},
		{
			Name: ToolPerformBooking,
			Description: "Create a customer booking. All four parameters are required; on success the booking " +
				"is confirmed with the parsed date, time, and number of guests.",
			Params: []contract.ToolParam{
				{
					Name:        "customer_name",
					Type:        "string",
					Description: "Full name of the customer, e.g. 'John Doe'.",
					Required:    true,
				},
				{
					Name:        "customer_email",
					Type:        "string",
					Description: "Email address of the customer, e.g. 'john.doe@example.com'.",
					Required:    true,
				},
				{
					Name:        "date_time_str",
					Type:        "string",
					Description: "Natural language date/time, e.g. 'tomorrow 7PM'. Should resolve to a future date/time.",
					Required:    true,
				},
				{
					Name:        "num_people_str",
					Type:        "string",
					Description: "Number of guests as a positive integer in string form, e.g. '3'.",
					Required:    true,
				},
			},
		},
		{
			Name:        ToolShowBookings,
			Description: "Fetch the bookings for a customer by their email.",
			Params: []contract.ToolParam{
				{
					Name:        "customer_email",
					Type:        "string",
					Description: "Customer's email address.",
					Required:    true,
				},
			},
		},
	}
}
