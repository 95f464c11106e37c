package testutil

import (
	"encoding/json"
	"fmt"
)

// EmbyMovie describes a movie for GenerateEmbyItemsJSON
type EmbyMovie struct {
	ID       string
	Name     string
	Year     int // 0 omits ProductionYear
	Path     string
	Overview string
	Sources  []string // media source paths
}

// GenerateEmbyItemsJSON renders an Emby /Items page holding movies with
// totalRecordCount as the server-side total.
func GenerateEmbyItemsJSON(movies []EmbyMovie, startIndex, totalRecordCount int) []byte {
	items := make([]map[string]any, 0, len(movies))
	for _, m := range movies {
		item := map[string]any{
			"Id":             m.ID,
			"Name":           m.Name,
			"Type":           "Movie",
			"Path":           m.Path,
			"Overview":       m.Overview,
			"DateCreated":    "2026-09-14T08:30:00.0000000Z",
			"PremiereDate":   "2026-05-01T00:00:00.0000000Z",
			"OfficialRating": "PG-13",
			"Genres":         []string{"Science Fiction"},
			"Studios":        []map[string]string{{"Name": "Legendary Pictures", "Id": "77"}},
			"People":         []map[string]string{{"Name": "Timothée Chalamet", "Role": "Paul Atreides", "Type": "Actor"}},
			"ProviderIds":    map[string]string{"Imdb": fmt.Sprintf("tt%s", m.ID)},
			"ImageTags":      map[string]string{"Primary": "tag" + m.ID},
		}
		if m.Year != 0 {
			item["ProductionYear"] = m.Year
		}

		sources := make([]map[string]any, 0, len(m.Sources))
		for i, p := range m.Sources {
			sources = append(sources, map[string]any{
				"Id":        fmt.Sprintf("%s-%d", m.ID, i),
				"Path":      p,
				"Protocol":  "File",
				"Container": "mkv",
				"MediaStreams": []map[string]any{
					{"Type": "Video", "Codec": "hevc", "Height": 2160, "Width": 3840, "Index": 0},
					{"Type": "Audio", "Codec": "eac3", "Channels": 6, "Index": 1},
				},
			})
		}
		item["MediaSources"] = sources
		items = append(items, item)
	}

	data, _ := json.Marshal(map[string]any{
		"Items":            items,
		"TotalRecordCount": totalRecordCount,
		"StartIndex":       startIndex,
	})
	return data
}

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}
