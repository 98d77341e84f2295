package jira

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m-mizutani/relsum/pkg/domain/model"
)

// CustomFieldIDs maps the known custom attributes to the tracker's field IDs. An empty ID
// disables the attribute.
type CustomFieldIDs struct {
	AcceptanceCriteria string `yaml:"acceptance_criteria"`
	TestDescription    string `yaml:"test_description"`
	StoryPoints        string `yaml:"story_points"`
	ApplicationName    string `yaml:"application_name"`
	Ready              string `yaml:"ready"`
	Blocked            string `yaml:"blocked"`
	SDLC               string `yaml:"sdlc"`
	SoftwareChangesIn  string `yaml:"software_changes_in"`
	TestTypes          string `yaml:"test_types"`
	FeatureLink        string `yaml:"feature_link"`
}

func DefaultCustomFieldIDs() CustomFieldIDs {
	return CustomFieldIDs{
		AcceptanceCriteria: "customfield_10100",
		TestDescription:    "customfield_10101",
		StoryPoints:        "customfield_10016",
		ApplicationName:    "customfield_10102",
		Ready:              "customfield_10103",
		Blocked:            "customfield_10104",
		SDLC:               "customfield_10105",
		SoftwareChangesIn:  "customfield_10106",
		TestTypes:          "customfield_10107",
		FeatureLink:        "customfield_10108",
	}
}

// Merge overrides IDs that are set in other.
func (x CustomFieldIDs) Merge(other CustomFieldIDs) CustomFieldIDs {
	pick := func(base, override string) string {
		if override != "" {
			return override
		}
		return base
	}
	return CustomFieldIDs{
		AcceptanceCriteria: pick(x.AcceptanceCriteria, other.AcceptanceCriteria),
		TestDescription:    pick(x.TestDescription, other.TestDescription),
		StoryPoints:        pick(x.StoryPoints, other.StoryPoints),
		ApplicationName:    pick(x.ApplicationName, other.ApplicationName),
		Ready:              pick(x.Ready, other.Ready),
		Blocked:            pick(x.Blocked, other.Blocked),
		SDLC:               pick(x.SDLC, other.SDLC),
		SoftwareChangesIn:  pick(x.SoftwareChangesIn, other.SoftwareChangesIn),
		TestTypes:          pick(x.TestTypes, other.TestTypes),
		FeatureLink:        pick(x.FeatureLink, other.FeatureLink),
	}
}

func (x CustomFieldIDs) ids() []string {
	var ids []string
	for _, id := range []string{
		x.AcceptanceCriteria, x.TestDescription, x.StoryPoints, x.ApplicationName, x.Ready,
		x.Blocked, x.SDLC, x.SoftwareChangesIn, x.TestTypes, x.FeatureLink,
	} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (x CustomFieldIDs) decode(fields map[string]json.RawMessage) model.IssueCustomFields {
	get := func(id string) json.RawMessage {
		if id == "" {
			return nil
		}
		return fields[id]
	}

	return model.IssueCustomFields{
		AcceptanceCriteria: textValue(get(x.AcceptanceCriteria)),
		TestDescription:    textValue(get(x.TestDescription)),
		StoryPoints:        numberValue(get(x.StoryPoints)),
		ApplicationName:    textValue(get(x.ApplicationName)),
		Ready:              textValue(get(x.Ready)),
		Blocked:            textValue(get(x.Blocked)),
		SDLC:               textValue(get(x.SDLC)),
		SoftwareChangesIn:  textValue(get(x.SoftwareChangesIn)),
		TestTypes:          textValues(get(x.TestTypes)),
		FeatureLink:        textValue(get(x.FeatureLink)),
	}
}

// extra collects non-empty custom fields that are not mapped to a known attribute.
func (x CustomFieldIDs) extra(fields map[string]json.RawMessage) map[string]json.RawMessage {
	known := make(map[string]struct{})
	for _, id := range x.ids() {
		known[id] = struct{}{}
	}

	var out map[string]json.RawMessage
	for k, v := range fields {
		if !strings.HasPrefix(k, "customfield_") || isNull(v) {
			continue
		}
		if _, ok := known[k]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]json.RawMessage)
		}
		out[k] = v
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// textValue flattens a field value to text. Select options give their value or name, arrays
// are joined with ", ".
func textValue(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return flatten(v)
}

func textValues(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	items, ok := v.([]any)
	if !ok {
		if s := flatten(v); s != "" {
			return []string{s}
		}
		return nil
	}

	var out []string
	for _, item := range items {
		if s := flatten(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func numberValue(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return nil
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		for _, key := range []string{"value", "name", "key", "displayName"} {
			if s, ok := t[key].(string); ok {
				return s
			}
		}
		return ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
