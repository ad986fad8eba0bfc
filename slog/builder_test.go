package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/mock"
	tgslog "github.com/fwojciec/tabgenie/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func info(name string) func() tabgenie.DatasetInfo {
	return func() tabgenie.DatasetInfo { return tabgenie.DatasetInfo{Name: name} }
}

// tripleBuilder is a builder extracting its own triples.
type tripleBuilder struct {
	*mock.TableBuilder
	*mock.TripleExtractor
}

func TestLoggingBuilder_PrepareTable(t *testing.T) {
	t.Parallel()

	t.Run("logs grid size with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tab := tabgenie.NewTable()
		tab.AddCell(tabgenie.NewCell("a"))
		tab.AddCell(tabgenie.NewCell("b"))
		tab.SaveRow()
		inner := &mock.TableBuilder{
			InfoFn: info("totto"),
			PrepareTableFn: func(entry tabgenie.Entry) (*tabgenie.Table, error) {
				return tab, nil
			},
		}

		got, err := tgslog.NewLoggingBuilder(inner, debugLogger(&buf)).PrepareTable(tabgenie.Entry(`{}`))

		require.NoError(t, err)
		assert.Same(t, tab, got)
		output := buf.String()
		assert.Contains(t, output, "prepare table")
		assert.Contains(t, output, "dataset=totto")
		assert.Contains(t, output, "rows=1")
		assert.Contains(t, output, "cols=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TableBuilder{
			InfoFn: info("totto"),
			PrepareTableFn: func(entry tabgenie.Entry) (*tabgenie.Table, error) {
				return nil, errors.New("bad entry")
			},
		}

		_, err := tgslog.NewLoggingBuilder(inner, debugLogger(&buf)).PrepareTable(nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad entry\"")
		assert.Contains(t, buf.String(), "rows=0")
	})
}

func TestLoggingBuilder_Triples(t *testing.T) {
	t.Parallel()

	t.Run("uses header lookups for plain builders", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		tab := tabgenie.NewTable()
		tab.Props.Set("title", "Prague")
		tab.AddCell(tabgenie.NewRowHeader("population"))
		tab.AddCell(tabgenie.NewCell("1.3M"))
		tab.SaveRow()
		inner := &mock.TableBuilder{InfoFn: info("wikibio")}

		triples, err := tgslog.NewLoggingBuilder(inner, debugLogger(&buf)).Triples(tab, nil)

		require.NoError(t, err)
		assert.Equal(t, []tabgenie.Triple{{"Prague", "population", "1.3M"}}, triples)
	})

	t.Run("delegates to builders extracting their own triples", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := tripleBuilder{
			TableBuilder: &mock.TableBuilder{InfoFn: info("webnlg")},
			TripleExtractor: &mock.TripleExtractor{
				TriplesFn: func(t *tabgenie.Table, cellIDs []int) ([]tabgenie.Triple, error) {
					return []tabgenie.Triple{{"a", "b", "c"}}, tabgenie.Errorf(tabgenie.ETRIPLE, "row 2 skipped")
				},
			},
		}

		triples, err := tgslog.NewLoggingBuilder(inner, debugLogger(&buf)).Triples(tabgenie.NewTable(), nil)

		assert.Equal(t, tabgenie.ETRIPLE, tabgenie.ErrorCode(err))
		assert.Equal(t, []tabgenie.Triple{{"a", "b", "c"}}, triples)
		assert.Contains(t, buf.String(), "triple extraction")
		assert.Contains(t, buf.String(), "dataset=webnlg")
	})
}
