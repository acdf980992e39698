package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/ailfred/internal/models"
)

func sampleTasks(t *testing.T) []models.Task {
	t.Helper()

	by, err := models.NewDate(2023, time.June, 6)
	require.NoError(t, err)
	at, err := models.NewDate(2023, time.August, 6)
	require.NoError(t, err)

	todo, err := models.NewTodo("read book")
	require.NoError(t, err)
	todo.MarkAsDone()
	deadline, err := models.NewDeadline("return book", by)
	require.NoError(t, err)
	event, err := models.NewEvent("project meeting", at)
	require.NoError(t, err)
	event.MarkAsDone()

	return []models.Task{todo, deadline, event}
}

func TestEncodeRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeRecords(&buf, sampleTasks(t)))

	want := "T | 1 | read book\n" +
		"D | 0 | return book | Jun 6 2023\n" +
		"E | 1 | project meeting | Aug 6 2023\n"
	assert.Equal(t, want, buf.String())
}

func TestRecords_RoundTrip(t *testing.T) {
	tasks := sampleTasks(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeRecords(&buf, tasks))

	got, err := DecodeRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestDecodeRecords_Empty(t *testing.T) {
	got, err := DecodeRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRecords_SkipsBlankLinesAndCR(t *testing.T) {
	in := "T | 0 | a\r\n\r\n   \nD | 1 | b | 2023-06-06\r\n"

	got, err := DecodeRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description())
	assert.Equal(t, "b", got[1].Description())
	assert.True(t, got[1].IsDone())
	assert.Equal(t, "Jun 6 2023", got[1].Date().String())
}

func TestDecodeRecord_Corrupt(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"bad done flag", "T | 2 | read book"},
		{"word done flag", "T | yes | read book"},
		{"unknown type", "X | 0 | read book"},
		{"lowercase type", "t | 0 | read book"},
		{"deadline missing date", "D | 0 | return book"},
		{"event missing date", "E | 1 | meeting"},
		{"todo with extra field", "T | 0 | read book | Jun 6 2023"},
		{"too few fields", "T | 0"},
		{"no separators", "garbage"},
		{"empty description", "T | 0 | "},
		{"unparseable date", "E | 0 | project meeting | Aug 6 2023 2-4pm"},
		{"deadline too many fields", "D | 0 | a | b | Jun 6 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord(tt.record)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptSaveFile)

			var cre *CorruptRecordError
			require.True(t, errors.As(err, &cre))
			assert.Equal(t, tt.record, cre.Record)
		})
	}
}

func TestDecodeRecords_ReportsLine(t *testing.T) {
	in := "T | 0 | a\nT | 0 | b\nQ | 0 | c\nT | 0 | d\n"

	got, err := DecodeRecords(strings.NewReader(in))
	assert.Nil(t, got)

	var cre *CorruptRecordError
	require.True(t, errors.As(err, &cre))
	assert.Equal(t, 3, cre.Line)
	assert.Contains(t, err.Error(), "line 3")
}

func TestDecodeRecords_LongRecord(t *testing.T) {
	long := strings.Repeat("x", 70000)
	in := "T | 0 | a\nT | 1 | " + long + "\nT | 0 | b"

	got, err := DecodeRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[1].Description())
	assert.True(t, got[1].IsDone())
	assert.Equal(t, "b", got[2].Description())
}

func TestDecodeRecords_ReadFailure(t *testing.T) {
	got, err := DecodeRecords(iotest.ErrReader(errors.New("device gone")))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrStorageIO)
	assert.NotErrorIs(t, err, ErrCorruptSaveFile)
}

func TestDecodeRecord_FreeTextEventDateIsCorrupt(t *testing.T) {
	_, err := DecodeRecord("E | 0 | project meeting | Aug 6 2023 2-4pm")
	assert.ErrorIs(t, err, ErrCorruptSaveFile)

	got, err := DecodeRecord("E | 0 | project meeting | Aug 6 2023")
	require.NoError(t, err)
	assert.Equal(t, "[E][ ] project meeting (at: Aug 6 2023)", got.String())
}

func TestDecodeRecord_AcceptsISODate(t *testing.T) {
	got, err := DecodeRecord("D | 0 | return book | 2023-06-06")
	require.NoError(t, err)
	assert.Equal(t, models.KindDeadline, got.Kind())
	assert.Equal(t, "D | 0 | return book | Jun 6 2023", got.Serialize())
}

func TestIOError(t *testing.T) {
	cause := errors.New("disk full")
	err := IOError("write", cause)

	assert.ErrorIs(t, err, ErrStorageIO)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage i/o error: write: disk full", err.Error())
}
