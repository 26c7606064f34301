package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/palemoky/prosody-scorer/internal/dataset"
)

// loadRecords reads the input dataset, remapping poemField/instructField
// onto content/instruct when the caller's JSON uses different key names
// (the --poem-field/--instruct-field flags spec.md §6 names). When isJSONL
// is false the whole file is treated as a single poem record instead of
// one-per-line.
func loadRecords(path string, isJSONL bool, poemField, instructField string) ([]dataset.Record, []dataset.LoadError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	if !isJSONL {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read input %s: %w", path, err)
		}
		rec, err := decodeRecord(data, poemField, instructField)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return []dataset.Record{rec}, nil, nil
	}

	var records []dataset.Record
	var errs []dataset.LoadError

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := decodeRecord([]byte(line), poemField, instructField)
		if err != nil {
			errs = append(errs, dataset.LoadError{Line: lineNo, Err: err})
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, errs, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return records, errs, nil
}

// decodeRecord renames poemField/instructField to the canonical
// content/instruct keys (when they differ) before handing off to
// dataset.Record's own JSON decoding, so unrelated keys still end up in
// Passthrough untouched.
func decodeRecord(data []byte, poemField, instructField string) (dataset.Record, error) {
	var rec dataset.Record

	if poemField == "content" && instructField == "instruct" {
		err := json.Unmarshal(data, &rec)
		return rec, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return rec, err
	}
	if v, ok := raw[poemField]; ok && poemField != "content" {
		raw["content"] = v
		delete(raw, poemField)
	}
	if v, ok := raw[instructField]; ok && instructField != "instruct" {
		raw["instruct"] = v
		delete(raw, instructField)
	}

	remapped, err := json.Marshal(raw)
	if err != nil {
		return rec, err
	}
	err = json.Unmarshal(remapped, &rec)
	return rec, err
}
