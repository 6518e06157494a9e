package blueprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefillSourceJSON(t *testing.T) {
	tests := []struct {
		label    string
		source   PrefillSource
		wantJSON string
	}{
		{
			label:    "form field",
			source:   FormFieldSource{FormID: "form-a", FieldName: "email", FormName: "Direct: Form A"},
			wantJSON: `{"type":"formField","formId":"form-a","fieldName":"email","formName":"Direct: Form A"}`,
		},
		{
			label:    "form field without name",
			source:   FormFieldSource{FormID: "form-a", FieldName: "email"},
			wantJSON: `{"type":"formField","formId":"form-a","fieldName":"email"}`,
		},
		{
			label:    "global",
			source:   GlobalSource{GlobalKey: DummyGlobalKey, Label: DummyGlobalLabel},
			wantJSON: `{"type":"global","globalKey":"dummy_global","label":"Dummy Global Source"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			data, err := json.Marshal(tt.source)
			require.NoError(t, err)
			require.JSONEq(t, tt.wantJSON, string(data))

			decoded, err := DecodePrefillSource(data)
			require.NoError(t, err)
			require.Equal(t, tt.source, decoded)
		})
	}
}

func TestDecodePrefillSourceErrors(t *testing.T) {
	_, err := DecodePrefillSource([]byte(`{"type":"webhook","url":"x"}`))
	require.ErrorIs(t, err, ErrUnknownSourceType)

	_, err = DecodePrefillSource([]byte(`{"globalKey":"x"}`))
	require.ErrorIs(t, err, ErrUnknownSourceType)

	_, err = DecodePrefillSource([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestPrefillMappingJSON(t *testing.T) {
	raw := `{
		"email": {"type":"formField","formId":"form-a","fieldName":"email","formName":"Direct: Form A"},
		"region": {"type":"global","globalKey":"dummy_global"},
		"notes": null
	}`

	var mapping PrefillMapping
	require.NoError(t, json.Unmarshal([]byte(raw), &mapping))
	require.Len(t, mapping, 3)
	require.Equal(t, FormFieldSource{FormID: "form-a", FieldName: "email", FormName: "Direct: Form A"}, mapping["email"])
	require.Equal(t, GlobalSource{GlobalKey: "dummy_global"}, mapping["region"])

	notes, ok := mapping["notes"]
	require.True(t, ok)
	require.Nil(t, notes)

	data, err := json.Marshal(mapping)
	require.NoError(t, err)
	require.JSONEq(t, raw, string(data))
}

func TestPrefillMappingRejectsUnknownSource(t *testing.T) {
	var mapping PrefillMapping
	err := json.Unmarshal([]byte(`{"email":{"type":"magic"}}`), &mapping)
	require.ErrorIs(t, err, ErrUnknownSourceType)
	require.Contains(t, err.Error(), "email")
}

func TestDescribeSource(t *testing.T) {
	require.Equal(t, "Direct: Form A.email", DescribeSource(FormFieldSource{FormID: "form-a", FieldName: "email", FormName: "Direct: Form A"}))
	require.Equal(t, "form-a.email", DescribeSource(FormFieldSource{FormID: "form-a", FieldName: "email"}))
	require.Equal(t, DummyGlobalLabel, DescribeSource(GlobalSource{GlobalKey: DummyGlobalKey, Label: DummyGlobalLabel}))
	require.Equal(t, "k", DescribeSource(GlobalSource{GlobalKey: "k"}))
	require.Equal(t, "", DescribeSource(nil))
}
