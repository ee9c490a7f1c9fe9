package utils

import (
	"io"
	"strconv"
	"strings"

	"sortdemo/src/sort"
)

// FormatLine renders seq as decimal values separated by single spaces.
func FormatLine(seq sort.Sequence) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}

// PrintArr writes seq to w as one line.
func PrintArr(w io.Writer, seq sort.Sequence) error {
	_, err := io.WriteString(w, FormatLine(seq)+"\n")
	return err
}
