package interval

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func scanRange(t *testing.T, td *datadriven.TestData) (start, end int) {
	t.Helper()

	require.Len(t, td.CmdArgs, 2, "usage: %s <start> <end>", td.Cmd)

	start, err := strconv.Atoi(td.CmdArgs[0].Key)
	require.NoError(t, err)

	end, err = strconv.Atoi(td.CmdArgs[1].Key)
	require.NoError(t, err)

	return start, end
}

func TestSet_Script(t *testing.T) {
	var set Set

	datadriven.RunTest(t, "testdata/set", func(t *testing.T, td *datadriven.TestData) string {
		var err error

		switch td.Cmd {
		case "add":
			start, end := scanRange(t, td)
			err = set.Insert(start, end)
		case "remove":
			start, end := scanRange(t, td)
			err = set.Remove(start, end)
		case "clear":
			set.Clear()
		case "show":
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}

		if err != nil {
			return fmt.Sprintf("error: %s", err)
		}

		return set.String()
	})
}
