package favorites

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMenu_GroupsAndCollapsedSections(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	groups := []FavoriteGroup{
		{ID: "g-open", Name: "Open", Expanded: true, ClusterID: "c"},
		{ID: "g-shut", Name: "Shut", Expanded: false, ClusterID: "c"},
	}
	items := SortItems([]FavoriteItem{
		{ID: "loose", ClusterID: "c", CreatedAt: base},
		{ID: "in-open", ClusterID: "c", GroupID: "g-open", CreatedAt: base.Add(time.Minute)},
		{ID: "in-shut-1", ClusterID: "c", GroupID: "g-shut", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "in-shut-2", ClusterID: "c", GroupID: "g-shut", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "orphan", ClusterID: "c", GroupID: "g-deleted", CreatedAt: base.Add(4 * time.Minute)},
	})

	menu := BuildMenu(items, groups)

	assert.Equal(t, []string{"loose", "orphan"}, ids(menu.Ungrouped))
	require.Len(t, menu.Sections, 2)
	assert.Equal(t, 1, menu.Sections[0].Count)
	assert.Equal(t, []string{"in-open"}, ids(menu.Sections[0].Items))
	assert.Equal(t, 2, menu.Sections[1].Count)
	assert.Empty(t, menu.Sections[1].Items)
	assert.Equal(t, 5, menu.Len())

	rows := menu.Rows()
	kinds := make([]RowKind, len(rows))
	for i, r := range rows {
		kinds[i] = r.Kind
	}
	assert.Equal(t, []RowKind{RowItem, RowItem, RowGroup, RowItem, RowGroup}, kinds)
	assert.True(t, rows[3].Grouped)
	assert.False(t, rows[0].Grouped)
	assert.Equal(t, 2, rows[4].Count)
}

func TestClusterViews_EmptyClusterMatchesNothing(t *testing.T) {
	items := []FavoriteItem{{ID: "a", ClusterID: ""}}
	groups := []FavoriteGroup{{ID: "g", ClusterID: ""}}

	assert.Empty(t, ClusterItems(items, ""))
	assert.Empty(t, ClusterGroups(groups, ""))
}

func TestDecode_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantErr    bool
		wantItems  int
		wantGroups int
	}{
		{"empty input", "", false, 0, 0},
		{"empty object", "{}", false, 0, 0},
		{"null fields", `{"items":null,"groups":null}`, false, 0, 0},
		{"items only", `{"items":[{"id":"a","title":"A","path":"/a","clusterId":"c","createdAt":"2024-05-01T10:00:00.000Z"}]}`, false, 1, 0},
		{"bad groups keeps items", `{"items":[{"id":"a"}],"groups":"nope"}`, true, 1, 0},
		{"not an object", `[1,2,3]`, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Decode([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NotNil(t, snap.Items)
			assert.NotNil(t, snap.Groups)
			assert.Len(t, snap.Items, tt.wantItems)
			assert.Len(t, snap.Groups, tt.wantGroups)
		})
	}
}

func TestDecode_ReadsExtensionTimestamps(t *testing.T) {
	snap, err := Decode([]byte(`{"items":[{"id":"nav-1","title":"Pods","path":"/pods","clusterId":"c","createdAt":"2024-05-01T10:00:00.123Z","order":3}],"groups":[]}`))
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)

	it := snap.Items[0]
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC), it.CreatedAt.UTC())
	require.True(t, it.HasOrder())
	assert.Equal(t, 3, *it.Order)
}

func TestEncode_OmitsUnsetOptionalFields(t *testing.T) {
	data, err := Encode(Snapshot{Items: []FavoriteItem{{ID: "a", Title: "A", Path: "/a", ClusterID: "c"}}})
	require.NoError(t, err)

	s := string(data)
	assert.NotContains(t, s, `"icon"`)
	assert.NotContains(t, s, `"groupId"`)
	assert.NotContains(t, s, `"order"`)
	assert.Contains(t, s, `"groups": []`)
}
