package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question on its own line and returns the trimmed answer.
// A read error yields an empty answer.
func (p *Prompter) Ask(question string) string {
	fmt.Fprintln(p.out, question)

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		if err != io.EOF {
			log.Warn().Err(err).Msg("Failed to read input")
		}
		return ""
	}
	return strings.TrimSpace(input)
}

// AskInt behaves like Ask but parses the answer; anything unparseable is 0.
func (p *Prompter) AskInt(question string) int {
	n, err := strconv.Atoi(p.Ask(question))
	if err != nil {
		return 0
	}
	return n
}

// Values holds the raw, unvalidated answers.
type Values struct {
	Dir       string
	Extension string
	Count     int
	MinSizeMB int
	MaxSizeMB int
	SizeMB    int
}

// Fill prompts for every value that isSet reports as not supplied, in the
// order directory, extension, count, sizes. When count is 1 a single size is
// asked for and used as both bounds. Sizes are not asked for when count is
// not positive.
func (p *Prompter) Fill(v *Values, isSet func(name string) bool) {
	if !isSet("dir") {
		v.Dir = p.Ask("Enter destination directory path:")
	}
	if !isSet("ext") {
		v.Extension = p.Ask("Enter file extension to use .(txt|TXT|jpg|JPG|gif|GIF|doc|DOC|pdf|PDF):")
	}
	if !isSet("count") {
		v.Count = p.AskInt("Number of files to generate:")
	}
	if v.Count <= 0 {
		return
	}

	if isSet("size") {
		v.MinSizeMB, v.MaxSizeMB = v.SizeMB, v.SizeMB
		return
	}

	if v.Count == 1 {
		size := v.MaxSizeMB
		switch {
		case isSet("max"):
		case isSet("min"):
			size = v.MinSizeMB
		default:
			size = p.AskInt("Enter file size in MB:")
		}
		v.SizeMB = size
		v.MinSizeMB, v.MaxSizeMB = size, size
		return
	}

	if !isSet("min") {
		v.MinSizeMB = p.AskInt("Enter min file size in MB:")
	}
	if !isSet("max") {
		v.MaxSizeMB = p.AskInt("Enter max file size in MB:")
	}
}
