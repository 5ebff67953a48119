package tabular

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCSVReader_Metadata(t *testing.T) {
	r := NewCSVReader()

	assert.Equal(t, "csv", r.Format())
	assert.Equal(t, []string{".csv"}, r.SupportedExtensions())
}

func TestCSVReader_Read_WithOptionalColumns(t *testing.T) {
	path := writeFile(t, "chicago.csv", chicagoCSV)

	table, err := NewCSVReader().Read(context.Background(), path, domain.CityChicago)

	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	assert.Equal(t, domain.CityChicago, table.City)
	assert.True(t, table.HasGender)
	assert.True(t, table.HasBirthYear)

	first := table.Trips[0]
	assert.Equal(t, "1423854", first.ID)
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 1992, first.BirthYear)
	assert.InDelta(t, 321, first.Duration, 1e-9)
	assert.Equal(t, 6, first.Month)
	assert.Equal(t, "friday", first.DayOfWeek)
	assert.Equal(t, 15, first.Hour)
	assert.Equal(t, 14, first.EndTime.Minute())

	last := table.Trips[2]
	assert.Empty(t, last.Gender)
	assert.Zero(t, last.BirthYear)
}

func TestCSVReader_Read_WithoutOptionalColumns(t *testing.T) {
	path := writeFile(t, "washington.csv", washingtonCSV)

	table, err := NewCSVReader().Read(context.Background(), path, domain.CityWashington)

	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.False(t, table.HasGender)
	assert.False(t, table.HasBirthYear)
	assert.InDelta(t, 489.066, table.Trips[0].Duration, 1e-9)
}

func TestCSVReader_Read_MissingFile(t *testing.T) {
	_, err := NewCSVReader().Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), domain.CityChicago)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVReader_Read_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := NewCSVReader().Read(context.Background(), path, domain.CityChicago)

	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestCSVReader_Read_MissingRequiredColumn(t *testing.T) {
	path := writeFile(t, "bad.csv", "Start Time,Start Station\n2017-01-01 00:00:00,A\n")

	_, err := NewCSVReader().Read(context.Background(), path, domain.CityChicago)

	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestCSVReader_Read_MalformedRow(t *testing.T) {
	content := strings.Replace(washingtonCSV, "402.549", "soon", 1)
	path := writeFile(t, "washington.csv", content)

	_, err := NewCSVReader().Read(context.Background(), path, domain.CityWashington)

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 3")
}

func TestCSVReader_Read_MalformedRowAfterMultilineField(t *testing.T) {
	content := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"1,2017-06-21 08:36:34,,489,\"14th St\nat Belmont\",15th & K St NW,Subscriber\n" +
		"2,2017-03-11 10:40:00,,soon,Yuma St,Connecticut Ave,Subscriber\n"
	path := writeFile(t, "multiline.csv", content)

	_, err := NewCSVReader().Read(context.Background(), path, domain.CityWashington)

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 4")
}

func TestCSVReader_Read_MultilineFieldKept(t *testing.T) {
	content := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"1,2017-06-21 08:36:34,,489,\"14th St\nat Belmont\",15th & K St NW,Subscriber\n"
	path := writeFile(t, "multiline.csv", content)

	table, err := NewCSVReader().Read(context.Background(), path, domain.CityWashington)

	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "14th St\nat Belmont", table.Trips[0].StartStation)
}

func TestCSVReader_Read_RaggedRow(t *testing.T) {
	path := writeFile(t, "ragged.csv", washingtonCSV+"1,2017-01-01 00:00:00\n")

	_, err := NewCSVReader().Read(context.Background(), path, domain.CityWashington)

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestCSVReader_Read_RowNumbersWhenNoIDColumn(t *testing.T) {
	content := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-01 00:00:00,60,A,B,Customer\n" +
		"2017-01-01 01:00:00,60,B,A,Customer\n"
	path := writeFile(t, "noid.csv", content)

	table, err := NewCSVReader().Read(context.Background(), path, domain.CityChicago)

	require.NoError(t, err)
	assert.Equal(t, "1", table.Trips[0].ID)
	assert.Equal(t, "2", table.Trips[1].ID)
}
