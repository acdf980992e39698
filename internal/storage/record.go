package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tiwariParth/ailfred/internal/models"
)

// EncodeRecords writes one save record per task, in order.
func EncodeRecords(w io.Writer, tasks []models.Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if _, err := bw.WriteString(t.Serialize() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeRecords reads save records until EOF. The first corrupt record aborts
// the whole read. Blank lines are skipped.
func DecodeRecords(r io.Reader) ([]models.Task, error) {
	var tasks []models.Task

	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, IOError("read records", readErr)
		}
		line++

		text := strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(text) != "" {
			t, err := DecodeRecord(text)
			if err != nil {
				var cre *CorruptRecordError
				if errors.As(err, &cre) {
					cre.Line = line
				}
				return nil, err
			}
			tasks = append(tasks, t)
		}
		if readErr != nil {
			break
		}
	}

	return tasks, nil
}

// DecodeRecord parses a single save record such as "D | 0 | return book | Jun 6 2023".
func DecodeRecord(record string) (models.Task, error) {
	corrupt := func(format string, args ...any) error {
		return &CorruptRecordError{Record: record, Reason: fmt.Sprintf(format, args...)}
	}

	fields := strings.Split(record, models.FieldSeparator)
	if len(fields) < 3 {
		return models.Task{}, corrupt("expected at least 3 fields, got %d", len(fields))
	}

	kind, ok := models.KindFromTag(fields[0])
	if !ok {
		return models.Task{}, corrupt("unknown task type %q", fields[0])
	}

	var done bool
	switch fields[1] {
	case "1":
		done = true
	case "0":
	default:
		return models.Task{}, corrupt("done flag must be 0 or 1, got %q", fields[1])
	}

	want := 3
	if kind != models.KindTodo {
		want = 4
	}
	if len(fields) != want {
		return models.Task{}, corrupt("%s record needs %d fields, got %d", kind, want, len(fields))
	}

	var (
		t   models.Task
		err error
	)
	switch kind {
	case models.KindTodo:
		t, err = models.NewTodo(fields[2])
	case models.KindDeadline, models.KindEvent:
		date, perr := models.ParseDate(fields[3])
		if perr != nil {
			return models.Task{}, corrupt("bad date: %v", perr)
		}
		if kind == models.KindDeadline {
			t, err = models.NewDeadline(fields[2], date)
		} else {
			t, err = models.NewEvent(fields[2], date)
		}
	}
	if err != nil {
		return models.Task{}, corrupt("%v", err)
	}

	if done {
		t.MarkAsDone()
	}
	return t, nil
}
