// Package dataset reads and writes the line-delimited JSON records spec.md
// §6 describes: one poem per line, `content` and `instruct` required,
// everything else passed through opaquely.
package dataset

import "encoding/json"

// Record is one input poem: content, declared form, and any number of
// opaque passthrough fields (title, dynasty, author, ...) that `extract`
// must preserve on the way back out.
type Record struct {
	Content     string
	Instruct    string
	Title       string
	Passthrough map[string]json.RawMessage
}

// UnmarshalJSON decodes content/instruct/title into their own fields and
// keeps every other key in Passthrough, untouched.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Passthrough = make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		switch k {
		case "content":
			if err := json.Unmarshal(v, &r.Content); err != nil {
				return err
			}
		case "instruct":
			if err := json.Unmarshal(v, &r.Instruct); err != nil {
				return err
			}
		case "title":
			if err := json.Unmarshal(v, &r.Title); err != nil {
				return err
			}
		default:
			r.Passthrough[k] = v
		}
	}
	return nil
}

// MarshalJSON re-flattens content/instruct/title alongside the preserved
// passthrough fields.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.Passthrough)+3)
	for k, v := range r.Passthrough {
		out[k] = v
	}
	if err := setField(out, "content", r.Content); err != nil {
		return nil, err
	}
	if err := setField(out, "instruct", r.Instruct); err != nil {
		return nil, err
	}
	if r.Title != "" {
		if err := setField(out, "title", r.Title); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

func setField(out map[string]json.RawMessage, key string, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	out[key] = raw
	return nil
}

// ScoredRecord is Record extended with the numeric fields spec.md §6 names
// for a scored output record, plus the optional rendered report.
type ScoredRecord struct {
	Record
	FormatScore        float64
	PingzeScore        float64
	RhymeScorePingshui float64
	RhymeScoreXin      float64
	RhymeScoreTong     float64
	RhymeScore         float64
	Report             string
}

// MarshalJSON flattens the scored fields on top of the base record's
// passthrough and declared fields, matching spec.md §6's "same record
// extended with numeric fields" output shape.
func (s ScoredRecord) MarshalJSON() ([]byte, error) {
	base, err := s.Record.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}

	fields := map[string]float64{
		"format_score":         s.FormatScore,
		"pingze_score":         s.PingzeScore,
		"rhyme_score_pingshui": s.RhymeScorePingshui,
		"rhyme_score_xin":      s.RhymeScoreXin,
		"rhyme_score_tong":     s.RhymeScoreTong,
		"rhyme_score":          s.RhymeScore,
	}
	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = raw
	}
	if s.Report != "" {
		raw, err := json.Marshal(s.Report)
		if err != nil {
			return nil, err
		}
		out["report"] = raw
	}

	return json.Marshal(out)
}

// MeanTotal is the simple average of the three scores, the ranking key
// `extract` sorts descending by.
func (s ScoredRecord) MeanTotal() float64 {
	return (s.FormatScore + s.PingzeScore + s.RhymeScore) / 3
}
