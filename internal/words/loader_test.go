package words

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordbar/internal/testutil"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     []Entry
	}{
		{
			name:     "json english/chinese records",
			filename: "words.json",
			content:  `[{"english": "vacant", "chinese": "空的"}, {"english": "abandon", "chinese": "放弃"}]`,
			want: []Entry{
				{Term: "vacant", Translation: "空的"},
				{Term: "abandon", Translation: "放弃"},
			},
		},
		{
			name:     "json term/translation aliases",
			filename: "words.json",
			content:  `[{"term": " ripe ", "translation": "成熟的"}]`,
			want:     []Entry{{Term: "ripe", Translation: "成熟的"}},
		},
		{
			name:     "json drops blank terms",
			filename: "words.json",
			content:  `[{"english": "", "chinese": "空"}, {"english": "vivid", "chinese": ""}]`,
			want:     []Entry{{Term: "vivid", Translation: ""}},
		},
		{
			name:     "empty json list",
			filename: "words.json",
			content:  `[]`,
			want:     nil,
		},
		{
			name:     "yaml records",
			filename: "words.yaml",
			content: `- english: vacant
  chinese: 空的
- english: abandon
  chinese: 放弃
`,
			want: []Entry{
				{Term: "vacant", Translation: "空的"},
				{Term: "abandon", Translation: "放弃"},
			},
		},
		{
			name:     "plain text lines",
			filename: "words.txt",
			content: `vacant = 空的

abandon=放弃
no separator here
= missing term
missing translation =
`,
			want: []Entry{
				{Term: "vacant", Translation: "空的"},
				{Term: "abandon", Translation: "放弃"},
			},
		},
		{
			name:     "windows line endings",
			filename: "words.txt",
			content:  "vacant = 空的\r\nabandon = 放弃\r\n",
			want: []Entry{
				{Term: "vacant", Translation: "空的"},
				{Term: "abandon", Translation: "放弃"},
			},
		},
		{
			name:     "corrupt json",
			filename: "words.json",
			content:  `[{"english": "vacant",`,
			want:     nil,
		},
		{
			name:     "json object instead of list",
			filename: "words.json",
			content:  `{"english": "vacant", "chinese": "空的"}`,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			testutil.CreateTestFile(t, path, []byte(tt.content))

			got := Load(path, zerolog.Nop())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	if got := Load(path, zerolog.Nop()); len(got) != 0 {
		t.Errorf("expected empty result for missing file, got %v", got)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if got := Load("", zerolog.Nop()); got != nil {
		t.Errorf("expected nil for empty path, got %v", got)
	}
}

func TestLoad_CorruptSourceFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	testutil.CreateTestFile(t, path, []byte("not json at all"))

	store := NewStore(Load(path, zerolog.Nop()), zerolog.Nop())

	if store.Len() != 1 {
		t.Fatalf("expected single fallback entry, got %d", store.Len())
	}
	if e, _ := store.Current(); e != DefaultEntries()[0] {
		t.Errorf("Current() = %v, want %v", e, DefaultEntries()[0])
	}
}
