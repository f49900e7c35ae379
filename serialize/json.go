package serialize

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"sort"
	"strconv"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// jsonDoc is the on-the-wire JSON schema (spec §6): nodes carry a reload
// flag, edges carry a consumption and an exact-rational probability
// expressed as a "numerator/denominator" string so that re-import never
// suffers float drift (spec §8.7 "Exact rationals").
type jsonDoc struct {
	States  []jsonState  `json:"states"`
	Actions []jsonAction `json:"actions"`
	Targets []int        `json:"targets,omitempty"`
}

type jsonState struct {
	ID     int    `json:"id"`
	Name   string `json:"name,omitempty"`
	Reload bool   `json:"reload"`
}

type jsonAction struct {
	Src          int               `json:"src"`
	Label        string            `json:"label"`
	Consumption  int               `json:"consumption"`
	Distribution map[string]string `json:"distribution"`
}

// ImportJSON reads a CMDP and its target set from r.
func ImportJSON(r io.Reader) (*cmdp.CMDP, []cmdp.StateID, error) {
	var doc jsonDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c := cmdp.New()
	idOf := make(map[int]cmdp.StateID, len(doc.States))
	sorted := append([]jsonState(nil), doc.States...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, js := range sorted {
		sid, err := c.AddState(js.Reload, js.Name)
		if err != nil {
			return nil, nil, err
		}
		idOf[js.ID] = sid
	}

	for _, ja := range doc.Actions {
		src, ok := idOf[ja.Src]
		if !ok {
			return nil, nil, fmt.Errorf("%w: action %q references unknown src %d", ErrMalformed, ja.Label, ja.Src)
		}
		dist := make(cmdp.Distribution, len(ja.Distribution))
		for key, frac := range ja.Distribution {
			rawID, err := strconv.Atoi(key)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: distribution key %q: %v", ErrMalformed, key, err)
			}
			succ, ok := idOf[rawID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: action %q references unknown successor %d", ErrMalformed, ja.Label, rawID)
			}
			p, ok := new(big.Rat).SetString(frac)
			if !ok {
				return nil, nil, fmt.Errorf("%w: probability %q is not a valid fraction", ErrMalformed, frac)
			}
			dist[succ] = p
		}
		if _, err := c.AddAction(src, dist, ja.Label, ja.Consumption); err != nil {
			return nil, nil, err
		}
	}

	targets := make([]cmdp.StateID, 0, len(doc.Targets))
	for _, rawID := range doc.Targets {
		sid, ok := idOf[rawID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: target references unknown state %d", ErrMalformed, rawID)
		}
		targets = append(targets, sid)
	}

	return c, targets, nil
}

// ExportJSON writes cm and targets to w in the same schema ImportJSON reads.
func ExportJSON(w io.Writer, cm *cmdp.CMDP, targets []cmdp.StateID) error {
	doc := jsonDoc{}

	for _, sid := range cm.States() {
		st, err := cm.State(sid)
		if err != nil {
			return err
		}
		doc.States = append(doc.States, jsonState{ID: int(sid), Name: st.Name, Reload: st.Reload})

		acts, err := cm.ActionsFor(sid)
		if err != nil {
			return err
		}
		for _, a := range acts {
			dist := make(map[string]string, len(a.Distribution))
			for _, succ := range a.Distribution.Successors() {
				dist[strconv.Itoa(int(succ))] = a.Distribution.Prob(succ).RatString()
			}
			doc.Actions = append(doc.Actions, jsonAction{
				Src:          int(sid),
				Label:        a.Label,
				Consumption:  a.Consumption,
				Distribution: dist,
			})
		}
	}

	for _, t := range targets {
		doc.Targets = append(doc.Targets, int(t))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
