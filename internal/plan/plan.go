// Package plan defines the schedule snapshot delivered by the scheduling
// backend, exactly as it appears on the wire. Several JSON keys contain
// literal spaces; those are wire-format keys, not display strings, and
// must be preserved bit-exact.
package plan

import "time"

// Task is one scheduled operation with a fixed planned span and an
// assigned order, team and station.
type Task struct {
	ID          string `json:"task id"`
	Code        string `json:"task_code"`
	ProcessCode string `json:"process_code"`
	Name        string `json:"name"`
	OrderCode   string `json:"order code"`
	OrderName   string `json:"order_name"`
	ProductCode string `json:"product_code,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Start       Stamp  `json:"planstart"`
	End         Stamp  `json:"planend"`
	TeamID      string `json:"team id"`
	TeamCode    string `json:"team_code"`
	TeamName    string `json:"team name"`
	StationID   string `json:"station id"`
	StationCode string `json:"station code"`
	StationName string `json:"station name"`
	MachineID   string `json:"machine id,omitempty"`
	MachineCode string `json:"machine code,omitempty"`
	MachineName string `json:"machine name,omitempty"`
}

// Duration returns the planned span length. Inverted or zero-valued
// spans yield 0.
func (t Task) Duration() time.Duration {
	if t.Start.IsZero() || t.End.IsZero() || !t.End.After(t.Start.Time) {
		return 0
	}
	return t.End.Sub(t.Start.Time)
}

// OrderPlan is the order-level planned envelope of its tasks.
type OrderPlan struct {
	Code  string `json:"Order code"`
	Name  string `json:"Order name"`
	Start Stamp  `json:"planstart"`
	End   Stamp  `json:"planend"`
}

// Payload is one complete schedule snapshot. It is created once per
// load and never mutated; every derived view is recomputed from it, so
// views can never go stale relative to each other.
type Payload struct {
	BestOrderSequence []string    `json:"best_order_sequence"`
	OrderPlans        []OrderPlan `json:"product_order_plan"`
	Tasks             []Task      `json:"task_plan"`
}
