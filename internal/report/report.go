// Package report holds comparative timing results and renders them as
// tab-separated text or JSON.
package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LegendEntry explains one engine column.
type LegendEntry struct {
	Short       string `json:"short"`
	Description string `json:"description"`
}

type Report struct {
	Legend   []LegendEntry `json:"legend"`
	Sections []Section     `json:"sections"`
}

// Section is one timing, measured for every payload and engine at several
// element counts.
type Section struct {
	Name     string   `json:"name"`
	Payloads []string `json:"payloads"`
	Engines  []string `json:"engines"`
	Rows     []Row    `json:"rows"`
}

// Row holds the timings of one element count, indexed [payload][engine].
type Row struct {
	NumKeys int         `json:"num_keys"`
	Millis  [][]float64 `json:"millis"`
}

// WriteText renders r as tab-separated text: a legend, then per section a
// header naming the payload groups, a header naming the engines, and one
// line per element count.
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	p := message.NewPrinter(language.English)

	for i, l := range r.Legend {
		if i == 0 {
			bw.WriteString("Key:")
		}
		bw.WriteString("\t" + l.Short + " = " + l.Description + "\n")
	}

	for _, s := range r.Sections {
		gap := strings.Repeat("\t", len(s.Engines)+1)

		bw.WriteString("\n" + s.Name + "\t" + strings.Join(s.Payloads, gap) + "\n")

		bw.WriteString("Elem count")
		for g := range s.Payloads {
			if g > 0 {
				bw.WriteString("\t")
			}
			for _, e := range s.Engines {
				bw.WriteString("\t" + e)
			}
		}
		bw.WriteString("\n")

		for _, row := range s.Rows {
			p.Fprintf(bw, "%d", row.NumKeys)
			for g, millis := range row.Millis {
				if g > 0 {
					bw.WriteString("\t")
				}
				for _, ms := range millis {
					bw.WriteString("\t" + strconv.FormatFloat(ms, 'f', 2, 64))
				}
			}
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

func WriteJSON(w io.Writer, r *Report) error {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}
