package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLoc = "GET /api/users"

func param(name, in string, required bool) map[string]any {
	return map[string]any{"name": name, "in": in, "required": required}
}

func withParams(params ...map[string]any) map[string]any {
	list := make([]any, 0, len(params))
	for _, p := range params {
		list = append(list, p)
	}
	return map[string]any{"parameters": list}
}

func TestDiffParameters(t *testing.T) {
	tests := []struct {
		name         string
		old          map[string]any
		cur          map[string]any
		wantType     ChangeType
		wantSeverity Severity
		wantDesc     string
	}{
		{
			name:         "required parameter removed",
			old:          withParams(param("id", "query", true)),
			cur:          withParams(),
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityHigh,
			wantDesc:     "Required parameter 'id' (query) was removed from GET /api/users",
		},
		{
			name:         "optional parameter removed",
			old:          withParams(param("id", "query", false)),
			cur:          withParams(),
			wantType:     ChangeTypeInformational,
			wantSeverity: SeverityMedium,
			wantDesc:     "Optional parameter 'id' (query) was removed from GET /api/users",
		},
		{
			name:         "parameter without required flag removed",
			old:          withParams(map[string]any{"name": "id", "in": "query"}),
			cur:          map[string]any{},
			wantType:     ChangeTypeInformational,
			wantSeverity: SeverityMedium,
			wantDesc:     "Optional parameter 'id' (query) was removed from GET /api/users",
		},
		{
			name:         "required parameter added",
			old:          withParams(),
			cur:          withParams(param("id", "query", true)),
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityMedium,
			wantDesc:     "Required parameter 'id' (query) was added to GET /api/users",
		},
		{
			name:         "optional parameter added",
			old:          withParams(),
			cur:          withParams(param("id", "query", false)),
			wantType:     ChangeTypeAdditive,
			wantSeverity: SeverityLow,
			wantDesc:     "Optional parameter 'id' (query) was added to GET /api/users",
		},
		{
			name:         "parameter became required",
			old:          withParams(param("id", "query", false)),
			cur:          withParams(param("id", "query", true)),
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityHigh,
			wantDesc:     "Parameter 'id' (query) of GET /api/users became required",
		},
		{
			name:         "parameter became optional",
			old:          withParams(param("id", "query", true)),
			cur:          withParams(param("id", "query", false)),
			wantType:     ChangeTypeAdditive,
			wantSeverity: SeverityLow,
			wantDesc:     "Parameter 'id' (query) of GET /api/users became optional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := New().diffParameters(testLoc, tt.old, tt.cur)
			require.Len(t, changes, 1)
			c := changes[0]
			assert.Equal(t, tt.wantType, c.Type)
			assert.Equal(t, tt.wantSeverity, c.Severity)
			assert.Equal(t, CategoryParameter, c.Category)
			assert.Equal(t, "GET /api/users.parameters[id]", c.Location)
			assert.Equal(t, tt.wantDesc, c.Description)
		})
	}
}

func TestDiffParameters_MatchesByNameAndLocation(t *testing.T) {
	// same name, different location: one removal and one addition
	old := withParams(param("id", "query", false))
	cur := withParams(param("id", "header", false))

	changes := New().diffParameters(testLoc, old, cur)
	require.Len(t, changes, 2)
	assert.Equal(t, ChangeTypeInformational, changes[0].Type)
	assert.Equal(t, old["parameters"].([]any)[0], changes[0].OldValue)
	assert.Nil(t, changes[0].NewValue)
	assert.Equal(t, ChangeTypeAdditive, changes[1].Type)
	assert.Equal(t, cur["parameters"].([]any)[0], changes[1].NewValue)
	assert.Nil(t, changes[1].OldValue)
}

func TestDiffParameters_RequiredFlipValues(t *testing.T) {
	changes := New().diffParameters(testLoc,
		withParams(param("id", "path", false)),
		withParams(param("id", "path", true)),
	)
	require.Len(t, changes, 1)
	assert.Equal(t, false, changes[0].OldValue)
	assert.Equal(t, true, changes[0].NewValue)
}

func TestDiffParameters_IgnoresOtherFacets(t *testing.T) {
	old := withParams(map[string]any{"name": "id", "in": "query", "schema": map[string]any{"type": "string"}})
	cur := withParams(map[string]any{"name": "id", "in": "query", "schema": map[string]any{"type": "integer"}, "description": "new"})

	assert.Empty(t, New().diffParameters(testLoc, old, cur))
}

func TestDiffParameters_SkipsNonObjectEntries(t *testing.T) {
	old := map[string]any{"parameters": []any{"junk", 42.0, param("id", "query", true)}}
	cur := map[string]any{"parameters": "not-a-list"}

	changes := New().diffParameters(testLoc, old, cur)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeTypeBreaking, changes[0].Type)
}

func TestDiffRequestBody(t *testing.T) {
	body := func(required bool) map[string]any {
		return map[string]any{"required": required, "content": map[string]any{"application/json": map[string]any{}}}
	}

	tests := []struct {
		name         string
		old          map[string]any
		cur          map[string]any
		wantCount    int
		wantType     ChangeType
		wantSeverity Severity
		wantDesc     string
	}{
		{
			name:      "no body in either",
			old:       map[string]any{},
			cur:       map[string]any{},
			wantCount: 0,
		},
		{
			name:         "required body added",
			old:          map[string]any{},
			cur:          map[string]any{"requestBody": body(true)},
			wantCount:    1,
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityMedium,
			wantDesc:     "Required request body was added to GET /api/users",
		},
		{
			name:         "optional body added",
			old:          map[string]any{},
			cur:          map[string]any{"requestBody": body(false)},
			wantCount:    1,
			wantType:     ChangeTypeAdditive,
			wantSeverity: SeverityLow,
			wantDesc:     "Optional request body was added to GET /api/users",
		},
		{
			name:         "body removed",
			old:          map[string]any{"requestBody": body(false)},
			cur:          map[string]any{},
			wantCount:    1,
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityHigh,
			wantDesc:     "Request body was removed from GET /api/users",
		},
		{
			name:         "body became required",
			old:          map[string]any{"requestBody": body(false)},
			cur:          map[string]any{"requestBody": body(true)},
			wantCount:    1,
			wantType:     ChangeTypeBreaking,
			wantSeverity: SeverityHigh,
			wantDesc:     "Request body of GET /api/users became required",
		},
		{
			name:      "body became optional is not reported",
			old:       map[string]any{"requestBody": body(true)},
			cur:       map[string]any{"requestBody": body(false)},
			wantCount: 0,
		},
		{
			name:      "unchanged body",
			old:       map[string]any{"requestBody": body(true)},
			cur:       map[string]any{"requestBody": body(true)},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := New().diffRequestBody(testLoc, tt.old, tt.cur)
			require.Len(t, changes, tt.wantCount)
			if tt.wantCount == 0 {
				return
			}
			c := changes[0]
			assert.Equal(t, tt.wantType, c.Type)
			assert.Equal(t, tt.wantSeverity, c.Severity)
			assert.Equal(t, CategoryRequestBody, c.Category)
			assert.Equal(t, "GET /api/users.requestBody", c.Location)
			assert.Equal(t, tt.wantDesc, c.Description)
		})
	}
}

func TestDiffResponses(t *testing.T) {
	responses := func(codes ...string) map[string]any {
		r := make(map[string]any, len(codes))
		for _, code := range codes {
			r[code] = map[string]any{"description": code}
		}
		return map[string]any{"responses": r}
	}

	t.Run("success response removed", func(t *testing.T) {
		changes := New().diffResponses(testLoc, responses("200", "404"), responses("404"))
		require.Len(t, changes, 1)
		assert.Equal(t, ChangeTypeBreaking, changes[0].Type)
		assert.Equal(t, SeverityHigh, changes[0].Severity)
		assert.Equal(t, "GET /api/users.responses[200]", changes[0].Location)
		assert.Equal(t, map[string]any{"description": "200"}, changes[0].OldValue)
	})

	t.Run("error response removed", func(t *testing.T) {
		changes := New().diffResponses(testLoc, responses("200", "404"), responses("200"))
		require.Len(t, changes, 1)
		assert.Equal(t, ChangeTypeInformational, changes[0].Type)
		assert.Equal(t, SeverityLow, changes[0].Severity)
		assert.Equal(t, "Response '404' was removed from GET /api/users", changes[0].Description)
	})

	t.Run("responses added regardless of class", func(t *testing.T) {
		changes := New().diffResponses(testLoc, responses("200"), responses("200", "201", "500"))
		require.Len(t, changes, 2)
		for _, c := range changes {
			assert.Equal(t, ChangeTypeAdditive, c.Type)
			assert.Equal(t, SeverityLow, c.Severity)
			assert.Equal(t, CategoryResponse, c.Category)
		}
		assert.Equal(t, "GET /api/users.responses[201]", changes[0].Location)
		assert.Equal(t, "GET /api/users.responses[500]", changes[1].Location)
	})

	t.Run("missing responses objects", func(t *testing.T) {
		assert.Empty(t, New().diffResponses(testLoc, map[string]any{}, map[string]any{}))
	})
}

func TestDiffOperationID(t *testing.T) {
	tests := []struct {
		name     string
		old      any
		cur      any
		wantDesc string
	}{
		{"renamed", "listUsers", "getUsers", "Operation ID of GET /api/users changed from 'listUsers' to 'getUsers'"},
		{"removed", "listUsers", nil, "Operation ID of GET /api/users changed from 'listUsers' to none"},
		{"added", nil, "listUsers", "Operation ID of GET /api/users changed from none to 'listUsers'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldOp, newOp := map[string]any{}, map[string]any{}
			if tt.old != nil {
				oldOp["operationId"] = tt.old
			}
			if tt.cur != nil {
				newOp["operationId"] = tt.cur
			}
			changes := New().diffOperationID(testLoc, oldOp, newOp)
			require.Len(t, changes, 1)
			c := changes[0]
			assert.Equal(t, ChangeTypeInformational, c.Type)
			assert.Equal(t, SeverityLow, c.Severity)
			assert.Equal(t, CategoryOperation, c.Category)
			assert.Equal(t, "GET /api/users.operationId", c.Location)
			assert.Equal(t, tt.old, c.OldValue)
			assert.Equal(t, tt.cur, c.NewValue)
			assert.Equal(t, tt.wantDesc, c.Description)
		})
	}

	t.Run("unchanged", func(t *testing.T) {
		op := map[string]any{"operationId": "listUsers"}
		assert.Empty(t, New().diffOperationID(testLoc, op, op))
	})
}

func TestDiffDeprecated(t *testing.T) {
	tests := []struct {
		name      string
		old       map[string]any
		cur       map[string]any
		wantCount int
	}{
		{"newly deprecated", map[string]any{}, map[string]any{"deprecated": true}, 1},
		{"explicit false to true", map[string]any{"deprecated": false}, map[string]any{"deprecated": true}, 1},
		{"already deprecated", map[string]any{"deprecated": true}, map[string]any{"deprecated": true}, 0},
		{"undeprecated", map[string]any{"deprecated": true}, map[string]any{}, 0},
		{"never deprecated", map[string]any{}, map[string]any{"deprecated": false}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := New().diffDeprecated(testLoc, tt.old, tt.cur)
			require.Len(t, changes, tt.wantCount)
			if tt.wantCount == 1 {
				assert.Equal(t, ChangeTypeDeprecated, changes[0].Type)
				assert.Equal(t, SeverityLow, changes[0].Severity)
				assert.Equal(t, "GET /api/users.deprecated", changes[0].Location)
				assert.Equal(t, true, changes[0].NewValue)
			}
		})
	}
}
