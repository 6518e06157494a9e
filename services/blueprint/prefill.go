package blueprint

import (
	"encoding/json"
	"fmt"
)

// this file prefill.go contains the prefill source variants and the prefill mapping contract.

// SourceType is the discriminant carried by every prefill source on the wire.
type SourceType string

const (
	SourceTypeFormField SourceType = "formField"
	SourceTypeGlobal    SourceType = "global"
)

// PrefillSource is a candidate origin for a form field value.
// It is implemented only by FormFieldSource and GlobalSource.
type PrefillSource interface {
	SourceType() SourceType
	isPrefillSource()
}

// FormFieldSource takes its value from a field of another form.
type FormFieldSource struct {
	FormID    string `json:"formId"`
	FieldName string `json:"fieldName"`
	FormName  string `json:"formName,omitempty"`
}

// GlobalSource takes its value from a fixed, non-form source.
type GlobalSource struct {
	GlobalKey string `json:"globalKey"`
	Label     string `json:"label,omitempty"`
}

func (FormFieldSource) SourceType() SourceType { return SourceTypeFormField }
func (GlobalSource) SourceType() SourceType    { return SourceTypeGlobal }

func (FormFieldSource) isPrefillSource() {}
func (GlobalSource) isPrefillSource()    {}

func (s FormFieldSource) MarshalJSON() ([]byte, error) {
	type alias FormFieldSource
	return json.Marshal(struct {
		Type SourceType `json:"type"`
		alias
	}{SourceTypeFormField, alias(s)})
}

func (s GlobalSource) MarshalJSON() ([]byte, error) {
	type alias GlobalSource
	return json.Marshal(struct {
		Type SourceType `json:"type"`
		alias
	}{SourceTypeGlobal, alias(s)})
}

// DecodePrefillSource decodes a single source using its "type" discriminant.
func DecodePrefillSource(data []byte) (PrefillSource, error) {
	var head struct {
		Type SourceType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode prefill source: %w", err)
	}

	switch head.Type {
	case SourceTypeFormField:
		var s FormFieldSource
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode form field source: %w", err)
		}
		return s, nil
	case SourceTypeGlobal:
		var s GlobalSource
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode global source: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceType, head.Type)
	}
}

// PrefillMapping maps a field of the target form to its chosen source.
// A nil source means the field is not prefilled. It is populated by consumers, never here.
type PrefillMapping map[string]PrefillSource

func (m *PrefillMapping) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	mapping := make(PrefillMapping, len(raw))
	for fieldName, value := range raw {
		if string(value) == "null" {
			mapping[fieldName] = nil
			continue
		}
		source, err := DecodePrefillSource(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldName, err)
		}
		mapping[fieldName] = source
	}
	*m = mapping
	return nil
}

// DescribeSource returns a human readable label for a source.
func DescribeSource(source PrefillSource) string {
	switch s := source.(type) {
	case FormFieldSource:
		if s.FormName != "" {
			return s.FormName + "." + s.FieldName
		}
		return s.FormID + "." + s.FieldName
	case GlobalSource:
		if s.Label != "" {
			return s.Label
		}
		return s.GlobalKey
	case nil:
		return ""
	default:
		panic(fmt.Sprintf("blueprint: unhandled prefill source %T", source))
	}
}
