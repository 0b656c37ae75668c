package fieldtags_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcodec/json4/pkg/fieldtags"
)

type example struct {
	Name     string
	Age      int            `json:"age"`
	Nickname string         `json:"nick,omitempty"`
	Hidden   string         `json:"-"`
	Internal string         `json:"-,"`
	unexport string
}

var _ = example{}.unexport

func upper(name string) string { return strings.ToUpper(name) }

func TestFieldsHonorsExplicitTag(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	byGoName := map[string]fieldtags.Info{}
	for _, f := range fields {
		byGoName[f.GoName] = f
	}

	require.Contains(t, byGoName, "Age")
	assert.Equal(t, "age", byGoName["Age"].JSONName)
}

func TestFieldsAppliesConvertWhenNoTag(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	byGoName := map[string]fieldtags.Info{}
	for _, f := range fields {
		byGoName[f.GoName] = f
	}

	require.Contains(t, byGoName, "Name")
	assert.Equal(t, "NAME", byGoName["Name"].JSONName)
}

func TestFieldsHonorsOmitempty(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	for _, f := range fields {
		if f.GoName == "Nickname" {
			assert.Equal(t, "nick", f.JSONName)
			assert.True(t, f.Omitempty)
			return
		}
	}
	t.Fatal("Nickname field not found")
}

func TestFieldsSkipsDashTag(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	for _, f := range fields {
		assert.NotEqual(t, "Hidden", f.GoName)
	}
}

func TestFieldsSkipsUnexportedFields(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	for _, f := range fields {
		assert.NotEqual(t, "unexport", f.GoName)
	}
}

func TestFieldsPreservesDeclarationOrder(t *testing.T) {
	fields := fieldtags.Fields(reflect.TypeOf(example{}), upper)
	var order []string
	for _, f := range fields {
		order = append(order, f.GoName)
	}
	assert.True(t, sortedByIndex(fields))
	assert.NotEmpty(t, order)
}

func sortedByIndex(fields []fieldtags.Info) bool {
	for i := 1; i < len(fields); i++ {
		if fields[i].Index < fields[i-1].Index {
			return false
		}
	}
	return true
}
