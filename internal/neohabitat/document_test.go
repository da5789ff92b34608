package neohabitat_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/regionator/internal/neohabitat"
	"github.com/cory-johannsen/regionator/internal/region"
)

func renderedPlaza(t *testing.T) region.Document {
	t.Helper()
	src := `north: village.rdl;
mods {
  streetlamp { x:10; y:20; or:1; }
  sign { x:4; y:100; or:0; style:2; gr_state:1; } { 1:105; 0:72; }
}`
	r, _, err := region.FromRDL("plaza", src)
	require.NoError(t, err)
	doc, err := r.Render()
	require.NoError(t, err)
	return doc
}

func TestLoadDocument_RenderedRegion(t *testing.T) {
	data, err := json.Marshal(renderedPlaza(t))
	require.NoError(t, err)

	doc, err := neohabitat.LoadDocument(data)
	require.NoError(t, err)
	assert.Equal(t, "context-plaza", doc.Context.Ref)
	assert.Equal(t, 6, doc.Context.Capacity)
	require.Len(t, doc.Context.Mods, 1)
	assert.Equal(t, 3, doc.Context.Mods[0].NittyBits)
	assert.Equal(t, []string{"", "", "", "context-village"}, doc.Context.Mods[0].Neighbors)

	require.Len(t, doc.Items, 2)
	lamp := doc.Items[0].Mods[0]
	assert.Equal(t, "Streetlamp", lamp.Type)
	assert.Equal(t, 10, lamp.X)
	assert.Nil(t, lamp.Style)
	assert.Nil(t, lamp.Ascii)

	sign := doc.Items[1].Mods[0]
	require.NotNil(t, sign.Style)
	assert.Equal(t, 2, *sign.Style)
	require.NotNil(t, sign.GrState)
	assert.Equal(t, 1, *sign.GrState)
	assert.Equal(t, []int{72, 105}, sign.Ascii)
}

func TestLoadDocumentYAML_RenderedRegion(t *testing.T) {
	data, err := yaml.Marshal(renderedPlaza(t))
	require.NoError(t, err)

	doc, err := neohabitat.LoadDocumentYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "context-plaza", doc.Context.Ref)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "context-plaza", doc.Items[1].In)
}

func TestLoadDocument_Invalid(t *testing.T) {
	cases := []struct {
		name string
		json string
		want []string
	}{
		{"not json", `{`, []string{"parsing document JSON"}},
		{"empty", `[]`, []string{"document is empty"}},
		{
			"bad context",
			`[{"type":"item","ref":"plaza","name":"","mods":[]}]`,
			[]string{`type must be "context"`, `must start with "context-"`, "capacity must be present", "name must not be empty", "exactly one mod"},
		},
		{
			"bad item",
			`[{"type":"context","ref":"context-a","capacity":6,"name":"a","mods":[{"type":"Region","town_dir":"","port_dir":"","nitty_bits":3,"neighbors":["","","",""]}]},
			  {"type":"item","ref":"item-x1234.context-b","name":"X","in":"context-b","mods":[{"type":"Y","x":1}]}]`,
			[]string{`in must equal "context-a"`, "must match item-<id>.context-a", `mod type "Y" must equal name "X"`, "x, y and orientation"},
		},
		{
			"three neighbors",
			`[{"type":"context","ref":"context-a","capacity":6,"name":"a","mods":[{"type":"Region","town_dir":"","port_dir":"","nitty_bits":3,"neighbors":["","",""]}]}]`,
			[]string{"neighbors must have 4 slots"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := neohabitat.LoadDocument([]byte(tc.json))
			assert.Nil(t, doc)
			require.Error(t, err)
			for _, w := range tc.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

// TestLoadDocument_AnyRenderedRegionValidates verifies that every document the
// renderer produces passes the schema check.
func TestLoadDocument_AnyRenderedRegionValidates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := region.New(rapid.StringMatching(`[A-Za-z0-9_]{1,12}`).Draw(rt, "name"))
		for _, dir := range []string{"north", "south", "east", "west"} {
			if rapid.Bool().Draw(rt, dir) {
				r.Params[dir] = rapid.StringMatching(`[A-Za-z0-9_]{1,8}\.rdl`).Draw(rt, dir+"_ref")
			}
		}
		n := rapid.IntRange(0, 6).Draw(rt, "mods")
		for i := 0; i < n; i++ {
			params := map[string]string{"x": "1", "y": "2", "or": "3"}
			if rapid.Bool().Draw(rt, "style") {
				params["style"] = "4"
			}
			r.AddMod(rapid.StringMatching(`[a-z][a-z0-9_]{0,8}`).Draw(rt, "identifier"), params, nil)
		}
		rendered, err := r.Render()
		require.NoError(rt, err)
		data, err := json.Marshal(rendered)
		require.NoError(rt, err)
		doc, err := neohabitat.LoadDocument(data)
		require.NoError(rt, err)
		assert.Len(rt, doc.Items, n)
	})
}
