// Package cli runs the urlseg subcommands: it segments inputs, renders the results and
// reports failures through the logger.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/urlseg/internal/security"
	"github.com/sgaunet/urlseg/internal/ui"
	"github.com/sgaunet/urlseg/pkg/git"
	"github.com/sgaunet/urlseg/pkg/render"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

var (
	// ErrSomeInputsFailed is returned when at least one input could not be parsed.
	ErrSomeInputsFailed = errors.New("some inputs could not be parsed")

	// ErrNoInput is returned when there is nothing to parse.
	ErrNoInput = errors.New("no input given")
)

const fragmentPrompt = "URL fragment:"

// maxInputLine is the longest stdin line ReadInputs accepts.
const maxInputLine = 1 << 20

// Runner executes subcommands and writes rendered results to its output.
type Runner struct {
	log    *bullets.Logger
	out    io.Writer
	format render.Format
	redact bool
	mode   urlparser.Mode
}

// NewRunner creates a runner writing results to out in the given format.
// When redact is set, passwords are masked in the output.
func NewRunner(out io.Writer, log *bullets.Logger, format render.Format, redact bool) *Runner {
	return &Runner{log: log, out: out, format: format, redact: redact, mode: urlparser.ModePartial}
}

// SetMode sets the mode preselected by Interactive.
func (r *Runner) SetMode(mode urlparser.Mode) {
	r.mode = mode
}

// Parse segments every input with the given mode and renders the results.
// Inputs that fail to parse are logged and skipped; [ErrSomeInputsFailed] is returned
// once the others have been rendered.
func (r *Runner) Parse(mode urlparser.Mode, inputs []string) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	results := make([]render.Result, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		result, err := r.segment(mode, input)
		if err != nil {
			failed++
			r.log.Error(fmt.Sprintf("Could not parse %s input: %s", mode, security.SanitizeURL(input)))
			continue
		}
		results = append(results, result)
	}

	if err := render.Write(r.out, r.format, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSomeInputsFailed, failed, len(inputs))
	}
	return nil
}

// Remotes segments the remote URLs of the repository containing repoPath.
func (r *Runner) Remotes(repoPath string) error {
	repo, err := git.OpenRepository(repoPath)
	if err != nil {
		return err
	}
	repo.SetLogger(r.log)

	remotes, err := repo.SegmentRemotes()
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		r.log.Warn("Repository has no remotes")
	}

	results := make([]render.Result, 0, len(remotes))
	for _, remote := range remotes {
		r.log.Debug(fmt.Sprintf("Remote %s: platform=%s repository=%s registrable=%s",
			remote.Remote, remote.Host.Platform, remote.RepositoryPath, remote.Host.RegistrableDomain))
		results = append(results, r.result(remote.Remote, remote.URL, remote.Segments))
	}

	return render.Write(r.out, r.format, results)
}

// Interactive reads fragments from p until an empty answer or a cancelled prompt,
// rendering the segments of each fragment as it is entered.
func (r *Runner) Interactive(p ui.Prompter) error {
	mode, err := p.SelectMode(r.mode)
	if err != nil {
		if errors.Is(err, ui.ErrPromptCancelled) {
			return nil
		}
		return err
	}

	for {
		fragment, err := p.AskFragment(fragmentPrompt)
		if err != nil {
			if errors.Is(err, ui.ErrPromptCancelled) {
				return nil
			}
			return err
		}
		if fragment == "" {
			return nil
		}

		result, err := r.segment(mode, fragment)
		if err != nil {
			r.log.Warn("Could not parse fragment: " + security.SanitizeURL(fragment))
			continue
		}
		if err := render.Write(r.out, r.format, []render.Result{result}); err != nil {
			return err
		}
	}
}

func (r *Runner) segment(mode urlparser.Mode, input string) (render.Result, error) {
	security.DebugURL(r.log, "Parsing "+string(mode)+" input", input)
	segs, err := urlparser.Parse(mode, input)
	if err != nil {
		return render.Result{}, err
	}
	security.DebugSegments(r.log, "Segmented", segs)
	return r.result("", input, segs), nil
}

func (r *Runner) result(label, input string, segs urlparser.Segments) render.Result {
	if r.redact {
		input = security.RedactInput(input, segs)
		segs = security.RedactSegments(segs)
	}
	return render.Result{Label: label, Input: input, Segments: segs}
}

// ReadInputs reads one input per line from rd, skipping blank lines.
// Lines longer than 1 MiB fail with bufio.ErrTooLong.
func ReadInputs(rd io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxInputLine)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}
