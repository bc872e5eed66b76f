package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schruteHeader = "index,season,episode,episode_name,director,writer,character,text,text_w_direction,imdb_rating,total_votes,air_date\n"

func TestLoadParsesSchruteLayout(t *testing.T) {
	data := schruteHeader +
		`1,1,1,Pilot,Ken Kwapis,Ricky Gervais,Michael,"All right Jim. Your quarterlies look very good.","All right Jim.",7.6,3706,2005-03-24` + "\n" +
		`2,1,1,Pilot,Ken Kwapis,Ricky Gervais,Jim,"Oh, I told you.","Oh, I told you.",7.6,3706,2005-03-24` + "\n"

	c, err := Load(strings.NewReader(data), LoadOptions{Name: "schrute.csv"})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	line, _ := c.Line(1)
	assert.Equal(t, "Jim", line.Character)
	assert.Equal(t, "Oh, I told you.", line.Text)
	assert.Equal(t, "oh i told you", line.NormalizedText)
	assert.Equal(t, 1, line.Season)
	assert.Equal(t, 1, line.Episode)
	assert.Equal(t, "Pilot", line.EpisodeName)
	assert.InDelta(t, 7.6, line.IMDBRating, 0.0001)
	assert.True(t, line.HasRating)
	assert.Equal(t, "2005-03-24", line.AirDate)
}

func TestLoadAcceptsReorderedAndMixedCaseHeaders(t *testing.T) {
	data := "\ufeffAir_Date,Text,Character,Season,Episode,Episode_Name,IMDB_Rating\n" +
		"2006-01-01,  Hi there ,Pam,2.0,3,The Office Olympics,\n"

	c, err := Load(strings.NewReader(data), LoadOptions{})
	require.NoError(t, err)
	line, _ := c.Line(0)
	assert.Equal(t, "  Hi there ", line.Text, "text keeps its raw form")
	assert.Equal(t, 2, line.Season)
	assert.False(t, line.HasRating)
	assert.Equal(t, "2006-01-01", line.AirDate)
}

func TestLoadTabDelimited(t *testing.T) {
	data := "text\tcharacter\tseason\tepisode\tepisode_name\timdb_rating\tair_date\n" +
		"Hello, world\tOscar\t3\t4\tThe Coup\t8.1\t2006-10-12\n"
	c, err := Load(strings.NewReader(data), LoadOptions{Delimiter: '\t'})
	require.NoError(t, err)
	line, _ := c.Line(0)
	assert.Equal(t, "Hello, world", line.Text)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty", data: "", wantErr: "is empty"},
		{name: "missing columns", data: "text,character\nhi,Pam\n", wantErr: "missing required column(s): season, episode, episode_name, imdb_rating, air_date"},
		{name: "bad season", data: schruteHeader + "1,one,1,Pilot,d,w,Michael,hi,hi,7.6,1,2005-03-24\n", wantErr: `row 2: column "season"`},
		{name: "fractional episode", data: schruteHeader + "1,1,1.5,Pilot,d,w,Michael,hi,hi,7.6,1,2005-03-24\n", wantErr: `column "episode"`},
		{name: "bad rating", data: schruteHeader + "1,1,1,Pilot,d,w,Michael,hi,hi,great,1,2005-03-24\n", wantErr: `invalid rating "great"`},
		{name: "short row", data: schruteHeader + "1,1,1,Pilot\n", wantErr: "row 2"},
		{name: "bad quoting", data: schruteHeader + "1,1,1,Pilot,d,w,Michael,\"unterminated,hi,7.6,1,2005\n", wantErr: "read fixture"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.data), LoadOptions{Name: "fixture"})
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrLoad)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFilesConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.tsv")
	require.NoError(t, os.WriteFile(first, []byte(schruteHeader+"1,1,1,Pilot,d,w,Michael,first,first,7.6,1,2005-03-24\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("text\tcharacter\tseason\tepisode\tepisode_name\timdb_rating\tair_date\nsecond\tDwight\t1\t2\tDiversity Day\t8.3\t2005-03-29\n"), 0o644))

	c, err := LoadFiles([]string{first, second}, LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	line, _ := c.Line(1)
	assert.Equal(t, "second", line.Text)
	assert.Equal(t, 1, line.Position)
}

func TestParseWhole(t *testing.T) {
	n, err := parseWhole("7")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = parseWhole("7.0")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, raw := range []string{"", "7.5", "NaN", "Inf", "seven"} {
		_, err := parseWhole(raw)
		assert.Error(t, err, raw)
	}
}
