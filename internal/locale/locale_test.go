package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleLoadsEmbeddedLanguages(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"EN", "FR", "ZH"}, b.Languages())
	assert.True(t, b.Supports("EN"))
	assert.True(t, b.Supports("fr"))
	assert.False(t, b.Supports("not a tag"))
}

func TestMonths(t *testing.T) {
	b := MustBundle()

	en := b.Months("EN")
	require.Len(t, en, 12)
	assert.Equal(t, "January", en[0])
	assert.Equal(t, "December", en[11])

	fr := b.Months("FR")
	require.Len(t, fr, 12)
	assert.Equal(t, "juillet", fr[6])
}

func TestWeekDaysStartOnSunday(t *testing.T) {
	b := MustBundle()
	for _, lang := range b.Languages() {
		days := b.WeekDays(lang)
		require.Len(t, days, 7, lang)
		for _, d := range days {
			assert.NotEmpty(t, d.Abbr, lang)
			assert.NotEmpty(t, d.Title, lang)
		}
	}
	assert.Equal(t, WeekDay{Abbr: "Su", Title: "Sunday"}, b.WeekDays("EN")[0])
	assert.Equal(t, WeekDay{Abbr: "Di", Title: "dimanche"}, b.WeekDays("FR")[0])
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	b := MustBundle()
	assert.Equal(t, "March", b.Months("DE")[2])
	assert.Equal(t, "Go to next month", b.Message("DE", MsgNextMonth, nil))
}

func TestMessageTemplates(t *testing.T) {
	b := MustBundle()
	got := b.Message("EN", MsgMonthTitle, map[string]any{"Month": "July", "Year": 2019})
	assert.Equal(t, "July 2019", got)
	assert.Equal(t, "no.such.id", b.Message("EN", "no.such.id", nil))
}

// shortTable is a Provider with truncated tables.
type shortTable struct{}

func (shortTable) Months(string) []string { return []string{"Jan", "Feb"} }
func (shortTable) WeekDays(string) []WeekDay { return []WeekDay{{Abbr: "S", Title: "Sun"}} }
func (shortTable) Message(_, id string, _ map[string]any) string { return id }

func TestCheck(t *testing.T) {
	b := MustBundle()
	for _, lang := range b.Languages() {
		assert.NoError(t, Check(b, lang), lang)
	}
	assert.ErrorIs(t, Check(shortTable{}, "EN"), ErrIncompleteTable)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "juillet", MonthName(MustBundle(), "FR", time.July))
	assert.Equal(t, "Feb", MonthName(shortTable{}, "EN", time.February))
	assert.Equal(t, "July", MonthName(shortTable{}, "EN", time.July))
	assert.Equal(t, "%!Month(0)", MonthName(shortTable{}, "EN", 0))
}
