package laser

import (
	"encoding/json"

	"golang.org/x/xerrors"
)

// Sequence is an ordered list of sequence items. It has custom JSON
// codecs because SequenceItem is an interface; each item is stored as
// an object with a "type" tag. The Grbl variants carry numeric
// power/feed, the custom variant carries strings under the same keys.
type Sequence []SequenceItem

const (
	typeGrblConst = "grbl_const"
	typeGrblDyn   = "grbl_dyn"
	typeCustom    = "custom"
)

type grblRecord struct {
	Type   string `json:"type"`
	Passes uint16 `json:"passes"`
	Power  uint16 `json:"power"`
	Feed   uint16 `json:"feed"`
}

type customRecord struct {
	Type     string `json:"type"`
	Passes   uint16 `json:"passes"`
	LaserOn  string `json:"laser_on"`
	LaserOff string `json:"laser_off"`
	Power    string `json:"power"`
	Feed     string `json:"feed"`
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	records := make([]any, len(s))
	for i, item := range s {
		switch item := item.(type) {
		case GrblConst:
			records[i] = grblRecord{typeGrblConst, item.Passes, item.Power, item.Feed}
		case GrblDyn:
			records[i] = grblRecord{typeGrblDyn, item.Passes, item.Power, item.Feed}
		case CustomCodes:
			records[i] = customRecord{typeCustom, item.Passes, item.LaserOn, item.LaserOff, item.Power, item.Feed}
		default:
			return nil, xerrors.Errorf("unknown sequence item type %T", item)
		}
	}
	return json.Marshal(records)
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Sequence, 0, len(raw))
	for i, msg := range raw {
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return xerrors.Errorf("sequence item %d: %w", i, err)
		}

		switch probe.Type {
		case typeGrblConst:
			var rec grblRecord
			if err := json.Unmarshal(msg, &rec); err != nil {
				return xerrors.Errorf("sequence item %d: %w", i, err)
			}
			out = append(out, GrblConst{Passes: rec.Passes, Power: rec.Power, Feed: rec.Feed})
		case typeGrblDyn:
			var rec grblRecord
			if err := json.Unmarshal(msg, &rec); err != nil {
				return xerrors.Errorf("sequence item %d: %w", i, err)
			}
			out = append(out, GrblDyn{Passes: rec.Passes, Power: rec.Power, Feed: rec.Feed})
		case typeCustom:
			var rec customRecord
			if err := json.Unmarshal(msg, &rec); err != nil {
				return xerrors.Errorf("sequence item %d: %w", i, err)
			}
			out = append(out, CustomCodes{
				Passes:   rec.Passes,
				LaserOn:  rec.LaserOn,
				LaserOff: rec.LaserOff,
				Power:    rec.Power,
				Feed:     rec.Feed,
			})
		default:
			return xerrors.Errorf("sequence item %d: unknown type %q", i, probe.Type)
		}
	}

	*s = out
	return nil
}
