package tabgenie_test

import (
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKey(t *testing.T) {
	t.Parallel()

	key := tabgenie.TableKey{Dataset: "totto", Split: tabgenie.SplitDev, Index: 12}

	assert.Equal(t, "totto-dev-12", key.String())
	assert.Equal(t, "totto_dev_tab_12.csv", key.Filename("csv"))
	assert.NoError(t, key.Validate())
}

func TestTableKey_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tabgenie.TableKey
	}{
		{"missing dataset", tabgenie.TableKey{Split: tabgenie.SplitDev}},
		{"unknown split", tabgenie.TableKey{Dataset: "totto", Split: "validation"}},
		{"negative index", tabgenie.TableKey{Dataset: "totto", Split: tabgenie.SplitTest, Index: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tabgenie.EINVALID, tabgenie.ErrorCode(tt.key.Validate()))
		})
	}
}

func TestParseExportFormat(t *testing.T) {
	t.Parallel()

	f, err := tabgenie.ParseExportFormat("md")
	require.NoError(t, err)
	assert.Equal(t, tabgenie.FormatMarkdown, f)
	assert.Equal(t, "md", f.Extension())

	_, err = tabgenie.ParseExportFormat("pdf")
	assert.Equal(t, tabgenie.EINVALID, tabgenie.ErrorCode(err))
}
