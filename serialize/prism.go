package serialize

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// ImportPRISM reads a CMDP and its target set from a PRISM-like plain-text
// description (spec §6): one directive per non-blank, non-comment ("#")
// line.
//
//	state <id> [reload] [target]
//	action <src> <label> <consumption> <succ>=<num>/<den> [<succ>=<num>/<den> ...]
//
// State ids must be introduced by a state line before being referenced by
// any action line. This is a deliberately minimal stand-in for the PRISM
// symbolic format the original_source consumes via a third-party model
// checker (stormpy) — not available in this ecosystem — carrying forward
// only the action-based-consumption-reward / reload-label / target-label
// shape spec §6 actually requires of it.
func ImportPRISM(r io.Reader) (*cmdp.CMDP, []cmdp.StateID, error) {
	c := cmdp.New()
	idOf := make(map[int]cmdp.StateID)
	var targets []cmdp.StateID

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "state":
			rawID, reload, target, err := parseStateLine(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			sid, err := c.AddState(reload, "")
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}
			idOf[rawID] = sid
			if target {
				targets = append(targets, sid)
			}

		case "action":
			if err := parseActionLine(c, idOf, fields); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
			}

		default:
			return nil, nil, fmt.Errorf("%w: line %d: unknown directive %q", ErrMalformed, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return c, targets, nil
}

func parseStateLine(fields []string) (id int, reload, target bool, err error) {
	if len(fields) < 2 {
		return 0, false, false, fmt.Errorf("state line needs an id")
	}
	id, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, false, false, fmt.Errorf("state id %q: %w", fields[1], err)
	}
	for _, tag := range fields[2:] {
		switch tag {
		case "reload":
			reload = true
		case "target":
			target = true
		default:
			return 0, false, false, fmt.Errorf("unknown state tag %q", tag)
		}
	}
	return id, reload, target, nil
}

func parseActionLine(c *cmdp.CMDP, idOf map[int]cmdp.StateID, fields []string) error {
	if len(fields) < 5 {
		return fmt.Errorf("action line needs src, label, consumption and at least one successor")
	}
	rawSrc, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("action src %q: %w", fields[1], err)
	}
	src, ok := idOf[rawSrc]
	if !ok {
		return fmt.Errorf("action references unknown state %d", rawSrc)
	}
	label := fields[2]
	cons, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("consumption %q: %w", fields[3], err)
	}

	dist := make(cmdp.Distribution)
	for _, part := range fields[4:] {
		succRaw, frac, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("successor entry %q must be <id>=<num>/<den>", part)
		}
		rawSucc, err := strconv.Atoi(succRaw)
		if err != nil {
			return fmt.Errorf("successor id %q: %w", succRaw, err)
		}
		succ, ok := idOf[rawSucc]
		if !ok {
			return fmt.Errorf("action references unknown successor %d", rawSucc)
		}
		p, ok := new(big.Rat).SetString(frac)
		if !ok {
			return fmt.Errorf("probability %q is not a valid fraction", frac)
		}
		dist[succ] = p
	}

	_, err = c.AddAction(src, dist, label, cons)
	return err
}

// ExportPRISM writes cm and targets in ImportPRISM's format.
func ExportPRISM(w io.Writer, cm *cmdp.CMDP, targets []cmdp.StateID) error {
	targetSet := make(map[cmdp.StateID]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	bw := bufio.NewWriter(w)
	for _, sid := range cm.States() {
		st, err := cm.State(sid)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("state %d", sid)
		if st.Reload {
			line += " reload"
		}
		if targetSet[sid] {
			line += " target"
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	for _, sid := range cm.States() {
		acts, err := cm.ActionsFor(sid)
		if err != nil {
			return err
		}
		for _, a := range acts {
			var parts []string
			for _, succ := range a.Distribution.Successors() {
				parts = append(parts, fmt.Sprintf("%d=%s", succ, a.Distribution.Prob(succ).RatString()))
			}
			if _, err := fmt.Fprintf(bw, "action %d %s %d %s\n", sid, a.Label, a.Consumption, strings.Join(parts, " ")); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
