// Package report renders theoretical and simulated win probabilities as
// console tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/montyhall"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	stayHeader   = "Strategy 1 (Stay)"
	switchHeader = "Strategy 2 (Switch)"
)

var rule = strings.Repeat("-", 50)

// newPrinter returns the printer used for every table so repetition counts
// carry digit grouping.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// WriteTheory writes the table of exact probabilities for each door count.
func WriteTheory(w io.Writer, doors []int) error {
	p := newPrinter()
	ew := &errWriter{w: w}

	ew.printf(p, "Theoretical Probabilities:\n")
	ew.printf(p, "%s\n", rule)
	ew.printf(p, "%-10s %-20s %-20s\n", "N doors", stayHeader, switchHeader)
	ew.printf(p, "%s\n", rule)
	for _, n := range doors {
		stay, sw := montyhall.Theoretical(n)
		ew.printf(p, "%-10d %-20.6f %-20.6f\n", n, stay, sw)
	}
	ew.printf(p, "%s\n", rule)

	return ew.err
}

// Console streams per-door-count tables as the experiment runs.
// It implements experiment.Observer.
type Console struct {
	w io.Writer
	p *message.Printer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, p: newPrinter()}
}

// BeginDoors writes the header for a new door count.
func (c *Console) BeginDoors(doors int) error {
	ew := &errWriter{w: c.w}
	ew.printf(c.p, "\nResults for N = %d doors:\n", doors)
	ew.printf(c.p, "%s\n", rule)
	ew.printf(c.p, "%-15s %-20s %-20s\n", "K repetitions", stayHeader, switchHeader)
	ew.printf(c.p, "%s\n", rule)
	return ew.err
}

// Result writes one row.
func (c *Console) Result(r montyhall.Result) error {
	ew := &errWriter{w: c.w}
	ew.printf(c.p, "%-15d %-20.6f %-20.6f\n", r.Repetitions, r.Stay, r.Switch)
	return ew.err
}

// WriteResults writes the per-door-count tables for an already computed set.
func WriteResults(w io.Writer, set *experiment.ResultSet) error {
	c := NewConsole(w)
	for _, n := range set.DoorCounts() {
		if err := c.BeginDoors(n); err != nil {
			return err
		}
		for _, r := range set.ForDoors(n) {
			if err := c.Result(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// TheoryRow is the JSON form of one theoretical row.
type TheoryRow struct {
	Doors  int     `json:"doors"`
	Stay   float64 `json:"stay"`
	Switch float64 `json:"switch"`
}

// Document is the JSON document written by WriteJSON.
type Document struct {
	Theoretical []TheoryRow        `json:"theoretical"`
	Results     []montyhall.Result `json:"results"`
	Plot        string             `json:"plot,omitempty"`
}

// NewDocument builds the JSON document for the given door counts and results.
// set may be nil when only the theory is wanted.
func NewDocument(doors []int, set *experiment.ResultSet) Document {
	doc := Document{
		Theoretical: make([]TheoryRow, 0, len(doors)),
		Results:     []montyhall.Result{},
	}
	for _, n := range doors {
		stay, sw := montyhall.Theoretical(n)
		doc.Theoretical = append(doc.Theoretical, TheoryRow{Doors: n, Stay: stay, Switch: sw})
	}
	if set != nil {
		doc.Results = append(doc.Results, set.Results()...)
	}
	return doc
}

// WriteJSON encodes doc to w.
func WriteJSON(w io.Writer, doc Document) error {
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// errWriter keeps the first write error so table code can print freely.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(p *message.Printer, format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = p.Fprintf(e.w, format, args...)
}
