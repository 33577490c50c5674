package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantName string
		wantErr  error
	}{
		{
			name:     "valid document",
			data:     `{"name": "Account", "fields": []}`,
			wantName: "Account",
		},
		{
			name:     "extra fields preserved",
			data:     `{"name": "Contact", "label": "Contact", "custom": false}`,
			wantName: "Contact",
		},
		{
			name:    "missing name",
			data:    `{"fields": []}`,
			wantErr: errors.ErrMissingName,
		},
		{
			name:    "not json",
			data:    `{"name": "Broken"`,
			wantErr: errors.ErrMalformedDocument,
		},
		{
			name:    "empty input",
			data:    ``,
			wantErr: errors.ErrMalformedDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.data))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, doc.Name())
			assert.Equal(t, tt.wantName+FileSuffix, doc.Filename())
		})
	}
}

func TestDocument_BytesIsCompact(t *testing.T) {
	doc, err := ParseDocument([]byte("{\n  \"name\": \"Account\",\n  \"fields\": []\n}"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Account","fields":[]}`, string(doc.Bytes()))
}

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument(map[string]any{"name": "Lead", "fields": []string{"Email"}})
	require.NoError(t, err)
	assert.Equal(t, "Lead", doc.Name())

	_, err = NewDocument(map[string]any{"label": "nameless"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingName))
}

func TestDocument_Decode(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"name": "Account", "fields": [{"name": "Id", "type": "id"}]}`))
	require.NoError(t, err)

	var schema struct {
		Name   string `json:"name"`
		Fields []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"fields"`
	}
	require.NoError(t, doc.Decode(&schema))
	assert.Equal(t, "Account", schema.Name)
	require.Len(t, schema.Fields, 1)
	assert.Equal(t, "id", schema.Fields[0].Type)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	original, err := ParseDocument([]byte(`{"name":"Opportunity","fields":[]}`))
	require.NoError(t, err)

	data, err := original.MarshalJSON()
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, original.Name(), decoded.Name())
	assert.Equal(t, original.Bytes(), decoded.Bytes())
}
