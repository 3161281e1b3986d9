package adapter

import (
	"bufio"
	"io"

	"github.com/gogpu/gpuwindow/driver"
)

// WriteRanking writes one line per adapter in enumeration order, prefixing
// the adapter at index selected with "* " and all others with two spaces.
// A negative selected marks nothing.
func WriteRanking(w io.Writer, props []driver.AdapterProperties, selected int) error {
	bw := bufio.NewWriter(w)
	for i, p := range props {
		mark := "  "
		if i == selected {
			mark = "* "
		}
		bw.WriteString(mark)
		bw.WriteString(p.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
