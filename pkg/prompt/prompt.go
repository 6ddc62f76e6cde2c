// Package prompt asks for a mood and a note on the terminal when mood log
// is run without arguments.
package prompt

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/manifoldco/promptui"

	"tableflip.dev/mood/pkg/mood"
)

// MaxNote bounds the note typed at the prompt.
const MaxNote = 2000

// Prompter reads answers from In and draws on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Mood asks the user to pick one of the default moods.
func (p Prompter) Mood() (mood.Mood, error) {
	moods := mood.DefaultMoods()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "➜  {{ .Emoji }} {{ .Label | bold }}",
		Inactive: "   {{ .Emoji }} {{ .Label }}",
		Selected: "{{ .Emoji }} {{ .Label | bold }}",
	}

	s := promptui.Select{
		HideHelp:  true,
		Label:     "How are you feeling today?",
		Items:     moods,
		Templates: templates,
		Size:      len(moods),
		Searcher:  searcher(moods),
		Stdin:     io.NopCloser(p.in()),
		Stdout:    nopWriteCloser{p.Out},
	}

	i, _, err := s.Run()
	if err != nil {
		return mood.Mood{}, err
	}
	return moods[i], nil
}

// Note asks for an optional note. The answer is not trimmed here; the
// entry factory does that.
func (p Prompter) Note() (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}
	np := promptui.Prompt{
		Label:     "Add a note (optional)",
		Templates: templates,
		Validate:  validateNote,
		Stdin:     io.NopCloser(p.in()),
		Stdout:    nopWriteCloser{p.Out},
	}
	return np.Run()
}

func (p Prompter) in() io.Reader {
	if p.In == nil {
		return strings.NewReader("")
	}
	return p.In
}

func validateNote(input string) error {
	if utf8.RuneCountInString(input) > MaxNote {
		return errors.New("note is too long")
	}
	return nil
}

func searcher(moods []mood.Mood) func(string, int) bool {
	return func(input string, index int) bool {
		m := moods[index]
		input = strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(m.ID, input) || strings.Contains(strings.ToLower(m.Label), input)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (n nopWriteCloser) Write(p []byte) (int, error) {
	if n.Writer == nil {
		return len(p), nil
	}
	return n.Writer.Write(p)
}

func (nopWriteCloser) Close() error { return nil }
