package windows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-flextable/adapters/slice"
	"github.com/magpierre/fyne-flextable/flextable"
)

func TestDetectFileType(t *testing.T) {
	cases := []struct {
		path string
		want FileType
	}{
		{"data.csv", FileTypeCSV},
		{"data.tsv", FileTypeCSV},
		{"notes.txt", FileTypeCSV},
		{"DATA.CSV", FileTypeCSV},
		{"events.parquet", FileTypeParquet},
		{"records.json", FileTypeJSON},
		{"/some/dir/records.JSON", FileTypeJSON},
		{"report.xlsx", FileTypeUnknown},
		{"README.md", FileTypeUnknown},
		{"noextension", FileTypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFileType(tc.path), tc.path)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectCSVSeparator(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    rune
	}{
		{"comma.csv", "a,b,c\n1,2,3\n", ','},
		{"semicolon.csv", "a;b;c\n1;2;3\n", ';'},
		{"tabs.tsv", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"pipes.txt", "a|b|c\n1|2|3\n", '|'},
		{"empty.csv", "", ','},
		{"single.csv", "justonecolumn\n1\n", ','},
		{"tie.csv", "a,b;c\n", ','},
	}

	for _, tc := range cases {
		path := writeTempFile(t, tc.name, tc.content)
		sep, err := detectCSVSeparator(path)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, sep, tc.name)
	}

	sep, err := detectCSVSeparator(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.Equal(t, ',', sep, "missing files fall back to comma")
}

func TestGetSeparatorName(t *testing.T) {
	assert.Equal(t, "comma", getSeparatorName(','))
	assert.Equal(t, "semicolon", getSeparatorName(';'))
	assert.Equal(t, "tab", getSeparatorName('\t'))
	assert.Equal(t, "pipe", getSeparatorName('|'))
	assert.Equal(t, "#", getSeparatorName('#'))
}

func TestLoadCSVSource(t *testing.T) {
	path := writeTempFile(t, "data.csv", "id;name\n1;Alice\n2;Bob\n")

	src, detail, err := loadCSVSource(path)
	require.NoError(t, err)
	assert.Equal(t, "separator: semicolon", detail)

	require.Len(t, src.Columns(), 2)
	assert.Equal(t, "id", src.Columns()[0].Accessor)
	require.Len(t, src.Records(), 2)

	record := src.Records()[1].(map[string]interface{})
	assert.Equal(t, "Bob", record["name"])
}

func TestLoadJSONSourceArray(t *testing.T) {
	path := writeTempFile(t, "data.json", `[{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}]`)

	src, detail, err := loadJSONSource(path)
	require.NoError(t, err)
	assert.Empty(t, detail)
	assert.Len(t, src.Records(), 2)
}

func TestLoadJSONSourceSingleObject(t *testing.T) {
	path := writeTempFile(t, "single.json", `{"id": 1, "name": "Alice"}`)

	src, _, err := loadJSONSource(path)
	require.NoError(t, err)
	require.Len(t, src.Records(), 1)

	record := src.Records()[0].(map[string]interface{})
	assert.Equal(t, "Alice", record["name"])
}

func TestLoadJSONSourceErrors(t *testing.T) {
	_, _, err := loadJSONSource(writeTempFile(t, "bad.json", "{not json"))
	assert.Error(t, err)

	_, _, err = loadJSONSource(writeTempFile(t, "empty.json", "[]"))
	assert.Error(t, err)
}

func TestLoadDataSourceUnsupported(t *testing.T) {
	_, _, err := loadDataSource("report.xlsx")
	assert.Error(t, err)
}

func viewOptionsSource(t *testing.T) flextable.Source {
	t.Helper()
	columns := []flextable.Column{
		{Accessor: "id", Label: "ID", Sortable: true},
		{Accessor: "name", Label: "Name", Sortable: true},
		{Accessor: "qty", Label: "Quantity", Sortable: true},
	}
	records := []interface{}{
		map[string]interface{}{"id": 1, "name": "pens", "qty": 10},
		map[string]interface{}{"id": 2, "name": "paper", "qty": 2},
		map[string]interface{}{"id": 3, "name": "clips", "qty": 55},
	}
	return slice.New(columns, records, nil)
}

func TestApplyViewOptions(t *testing.T) {
	src := viewOptionsSource(t)

	// Selection order does not matter, columns keep source order
	columns, records := applyViewOptions(src, &ViewOptions{
		SelectedColumns: []string{"qty", "id"},
		Limit:           2,
	})
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Accessor)
	assert.Equal(t, "qty", columns[1].Accessor)
	assert.Len(t, records, 2)
}

func TestApplyViewOptionsNoLimit(t *testing.T) {
	src := viewOptionsSource(t)

	columns, records := applyViewOptions(src, &ViewOptions{
		SelectedColumns: []string{"name"},
		Limit:           -1,
	})
	require.Len(t, columns, 1)
	assert.Equal(t, "name", columns[0].Accessor)
	assert.Len(t, records, 3)

	// A limit beyond the row count keeps everything
	_, records = applyViewOptions(src, &ViewOptions{
		SelectedColumns: []string{"name"},
		Limit:           100,
	})
	assert.Len(t, records, 3)
}

func TestApplyViewOptionsFeedsModel(t *testing.T) {
	src := viewOptionsSource(t)

	columns, records := applyViewOptions(src, &ViewOptions{
		SelectedColumns: []string{"name", "qty"},
		Limit:           -1,
	})

	m := flextable.NewTableModelFromData(columns, records, flextable.DefaultConfig())
	m.SortBy("qty")

	rows := m.VisibleRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "paper", rows[0].Row.Fields["name"].Formatted)
	assert.Equal(t, "clips", rows[2].Row.Fields["name"].Formatted)
}
