package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/sugawarayuuta/sonnet"
)

func testReport() *Report {
	return &Report{
		Legend: []LegendEntry{
			{Short: "UM", Description: "Go map"},
			{Short: "OL", Description: "linear probing"},
		},
		Sections: []Section{{
			Name:     "Fill time (ms)",
			Payloads: []string{"8 bytes", "32 bytes"},
			Engines:  []string{"UM", "OL"},
			Rows: []Row{
				{NumKeys: 1000, Millis: [][]float64{{0.5, 0.25}, {1, 2.25}}},
				{NumKeys: 2000, Millis: [][]float64{{1.5, 0.75}, {3, 4}}},
			},
		}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	qt.Assert(t, qt.IsNil(WriteText(&buf, testReport())))

	want := "Key:\tUM = Go map\n" +
		"\tOL = linear probing\n" +
		"\n" +
		"Fill time (ms)\t8 bytes\t\t\t32 bytes\n" +
		"Elem count\tUM\tOL\t\tUM\tOL\n" +
		"1,000\t0.50\t0.25\t\t1.00\t2.25\n" +
		"2,000\t1.50\t0.75\t\t3.00\t4.00\n"
	qt.Assert(t, qt.Equals(buf.String(), want))
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	qt.Assert(t, qt.IsNil(WriteText(&buf, &Report{})))
	qt.Assert(t, qt.Equals(buf.String(), ""))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	qt.Assert(t, qt.IsNil(WriteJSON(&buf, testReport())))
	qt.Assert(t, qt.StringContains(buf.String(), `"num_keys":1000`))

	var got Report
	qt.Assert(t, qt.IsNil(sonnet.Unmarshal(buf.Bytes(), &got)))
	qt.Assert(t, qt.DeepEquals(&got, testReport()))
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteErrors(t *testing.T) {
	qt.Assert(t, qt.ErrorIs(WriteText(failWriter{}, testReport()), errWrite))
	qt.Assert(t, qt.ErrorIs(WriteJSON(failWriter{}, testReport()), errWrite))
}
