package upgrade

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/o365cli/o365/internal/spfx/project"
)

// Rule inspects a project snapshot and reports the changes it requires.
// Rules are pure: they read the snapshot and never touch the filesystem.
type Rule interface {
	ID() string
	Visit(p *project.Project) []Finding
}

// ruleInfo holds the metadata every rule variant shares.
type ruleInfo struct {
	id          string
	title       string
	description string
	severity    Severity
	supersedes  []string
}

func (r ruleInfo) ID() string {
	return r.id
}

// finding builds a single-finding result. The finding resolution is the one
// of its first occurrence.
func (r ruleInfo) finding(resolutionType ResolutionType, occurrences ...Occurrence) []Finding {
	if len(occurrences) == 0 {
		return nil
	}
	var supersedes []string
	if len(r.supersedes) > 0 {
		supersedes = append(supersedes, r.supersedes...)
	}
	return []Finding{{
		ID:             r.id,
		Title:          r.title,
		Description:    r.description,
		Severity:       r.severity,
		ResolutionType: resolutionType,
		Resolution:     occurrences[0].Resolution,
		Supersedes:     supersedes,
		Occurrences:    occurrences,
	}}
}

// PropertyMode selects how a JSON property is checked.
type PropertyMode int

const (
	// PropertySet requires the property to hold exactly the expected value.
	PropertySet PropertyMode = iota
	// PropertyPresent requires the property to exist, the expected value is
	// only used in the resolution.
	PropertyPresent
	// PropertyContains requires the property to be an array holding every
	// expected value.
	PropertyContains
	// PropertyRemove requires the property to be absent.
	PropertyRemove
)

// checkProperty evaluates one property of a JSON object and returns the JSON
// snippet to apply when the check fails.
func checkProperty(data map[string]interface{}, path []string, expected interface{}, mode PropertyMode) (string, bool) {
	current, found := lookup(data, path)

	switch mode {
	case PropertySet:
		if found && jsonEqual(current, expected) {
			return "", false
		}
		return jsonSnippet(path, expected), true
	case PropertyPresent:
		if found {
			return "", false
		}
		return jsonSnippet(path, expected), true
	case PropertyContains:
		existing, _ := current.([]interface{})
		merged := append([]interface{}{}, existing...)
		missing := false
		for _, want := range toSlice(expected) {
			if !containsJSON(existing, want) {
				merged = append(merged, want)
				missing = true
			}
		}
		if !missing {
			return "", false
		}
		return jsonSnippet(path, merged), true
	case PropertyRemove:
		if !found {
			return "", false
		}
		return jsonSnippet(path, current), true
	}
	return "", false
}

func lookup(data map[string]interface{}, path []string) (interface{}, bool) {
	var current interface{} = data
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// normalize converts v into the representation encoding/json decodes to, so
// Go literals compare equal to parsed documents.
func normalize(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func jsonEqual(a, b interface{}) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

func containsJSON(list []interface{}, v interface{}) bool {
	for _, item := range list {
		if jsonEqual(item, v) {
			return true
		}
	}
	return false
}

func toSlice(v interface{}) []interface{} {
	if list, ok := normalize(v).([]interface{}); ok {
		return list
	}
	return []interface{}{v}
}

// jsonSnippet renders value nested under path as indented JSON.
func jsonSnippet(path []string, value interface{}) string {
	var nested interface{} = value
	for i := len(path) - 1; i >= 0; i-- {
		nested = map[string]interface{}{path[i]: nested}
	}
	return marshalIndent(nested)
}

func marshalIndent(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
