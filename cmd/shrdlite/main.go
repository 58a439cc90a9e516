package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/config"
	"github.com/npillmayer/shrdlite/dnf"
	"github.com/npillmayer/shrdlite/goaltree"
	"github.com/npillmayer/shrdlite/grammar"
	"github.com/npillmayer/shrdlite/interp"
	"github.com/npillmayer/shrdlite/search"
	"github.com/npillmayer/shrdlite/session"
	"github.com/npillmayer/shrdlite/world"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	initDisplay()
	fs := flag.NewFlagSet("shrdlite", flag.ContinueOnError)
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	rest := fs.Args()
	if len(rest) < 1 {
		pterm.Error.Println("usage: shrdlite <world-name> (<utterance>|<example-index>|<action-string>)...")
		return 1
	}
	preset, err := config.Lookup(rest[0])
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}
	w := preset.Initial()
	d := &driver{world: w, preset: preset, session: session.New(w)}

	queue := rest[1:]
	ok := true
	if len(queue) == 0 {
		ok = d.interactive()
	} else {
		for _, a := range queue {
			if !d.handle(a) {
				ok = false
			}
		}
		if d.session.State == session.AwaitingClarification {
			ok = d.interactive() && ok
		}
	}
	if !ok {
		return 1
	}
	return 0
}

// driver owns one interactive session: the live world, the compiled-in
// preset it was started from (for example-index resolution), and the
// pending-clarification state machine.
type driver struct {
	world   *world.WorldState
	preset  config.World
	session *session.Session
}

func (d *driver) prompt() string {
	if d.session.State == session.AwaitingClarification {
		return "clarify> "
	}
	return "shrdlite> "
}

// interactive reads lines via readline until EOF (ctrl-D) or interrupt
// (ctrl-C), dispatching each through handle.
func (d *driver) interactive() bool {
	rl, err := readline.New(d.prompt())
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	defer rl.Close()

	ok := true
	for {
		rl.SetPrompt(d.prompt())
		line, err := rl.Readline()
		if err != nil { // io.EOF on ctrl-D, readline.ErrInterrupt on ctrl-C
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !d.handle(line) {
			ok = false
		}
	}
	return ok
}

// handle dispatches one trailing argument or interactively typed line
// (§6): a pending clarification claims it first, regardless of shape;
// otherwise it is an example index, an action-string, the direct-formula
// escape hatch, or an utterance, tried in that order.
func (d *driver) handle(raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return true
	}
	if d.session.State == session.AwaitingClarification {
		return d.handleClarification(text)
	}
	if n, err := strconv.Atoi(text); err == nil {
		return d.handleExampleIndex(n)
	}
	if isActionString(text) {
		return d.handleActionString(text)
	}
	if rest, ok := cutPrefix(text, "dnf "); ok {
		return d.handleDirectFormula(rest)
	}
	return d.handleUtterance(text)
}

// isActionString reports whether text is a whitespace-separated sequence
// of single-letter tokens drawn from {p, d, l, r} (§6): any token outside
// that set disqualifies it, routing it to the utterance pipeline.
func isActionString(text string) bool {
	toks := strings.Fields(text)
	if len(toks) == 0 {
		return false
	}
	for _, t := range toks {
		switch t {
		case "p", "d", "l", "r":
		default:
			return false
		}
	}
	return true
}

// cutPrefix is strings.CutPrefix, inlined for the Go 1.18 toolchain this
// module targets (CutPrefix was added in 1.20).
func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// handleExampleIndex resolves a 1-based index against the named world's
// predefined examples (§6) and dispatches the resulting utterance exactly
// as if it had been typed.
func (d *driver) handleExampleIndex(n int) bool {
	if n < 1 || n > len(d.preset.Examples) {
		pterm.Error.Println(fmt.Sprintf("example %d is out of range (1-%d)", n, len(d.preset.Examples)))
		return false
	}
	return d.handle(d.preset.Examples[n-1])
}

// handleActionString executes a literal sequence of arm primitives
// directly, bypassing interpretation and planning entirely.
func (d *driver) handleActionString(text string) bool {
	toks := make([]shrdlite.ActionToken, 0, len(strings.Fields(text)))
	for _, t := range strings.Fields(text) {
		toks = append(toks, shrdlite.ActionToken(t))
	}
	if err := d.execute(toks); err != nil {
		pterm.Error.Println(err)
		return false
	}
	return true
}

// handleDirectFormula implements the `dnf `-prefixed escape hatch of §6:
// the remainder is parsed as a DNF formula and handed straight to the
// planner, bypassing grammar and interp entirely.
func (d *driver) handleDirectFormula(text string) bool {
	f, err := dnf.Parse(text)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	return d.plan(f)
}

// handleClarification feeds text to the pending command as a
// clarification reply and retries interpretation (§4.4, §7).
func (d *driver) handleClarification(text string) bool {
	cls, err := grammar.ParseClarification(text)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	if err := d.session.SubmitClarification(cls); err != nil {
		pterm.Error.Println(err)
		return false
	}
	f, err := d.session.Retry()
	if err != nil {
		return d.reportInterpretError(err)
	}
	return d.plan(f)
}

// handleUtterance parses text into one or more syntactic Commands (§6's
// grammar may return several, e.g. the attachment ambiguity of scenario
// D) and interprets each; formulas from every parse that interprets
// cleanly are pooled into one disjunction before planning, letting the
// high-level search itself select the cheapest interpretation (§7's
// "shortest plan wins" tie-break falls out of that for free). The first
// parse alone can signal a clarification request, which suspends the
// whole utterance pending a reply.
func (d *driver) handleUtterance(text string) bool {
	cmds, err := grammar.ParseCommand(text)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	var pooled dnf.Formula
	var lastErr error
	for i, cmd := range cmds {
		var f dnf.Formula
		var ierr error
		if i == 0 {
			f, ierr = d.session.Interpret(cmd)
		} else {
			f, ierr = interp.Interpret(d.world, cmd, nil)
		}
		if ierr != nil {
			var ambig *interp.AmbiguityError
			if i == 0 && errors.As(ierr, &ambig) {
				pterm.Info.Println(ambig.Question)
				return true
			}
			lastErr = ierr
			continue
		}
		pooled = append(pooled, f...)
	}
	if len(pooled) == 0 {
		return d.reportInterpretError(lastErr)
	}
	return d.plan(pooled)
}

// reportInterpretError surfaces an interpretation error to the user: an
// *interp.AmbiguityError is not a failure but a clarification request
// (§4.4, §7), printed without failing the command; anything else is a
// genuine interpretation failure.
func (d *driver) reportInterpretError(err error) bool {
	if err == nil {
		pterm.Error.Println("no interpretation")
		return false
	}
	var ambig *interp.AmbiguityError
	if errors.As(err, &ambig) {
		pterm.Info.Println(ambig.Question)
		return true
	}
	pterm.Error.Println(err)
	return false
}

// plan builds a goal tree from f and runs the two-level planner (§4.6),
// executing the resulting token sequence on success.
func (d *driver) plan(f dnf.Formula) bool {
	tree := goaltree.Build(f)
	result := search.Plan(context.Background(), d.world, f, tree)
	switch result.Status {
	case search.Success:
		if err := d.execute(result.Tokens); err != nil {
			pterm.Error.Println(err)
			return false
		}
		return true
	case search.Timeout:
		pterm.Error.Println("I could not plan that in time")
		return false
	default:
		pterm.Error.Println("I couldn't find a plan for that")
		return false
	}
}

// execute dispatches a token sequence to the actuator, applying
// primitives to the live world and printing annotations; a `#`-prefixed
// annotation is a silent comment and is never printed (§6).
func (d *driver) execute(toks []shrdlite.ActionToken) error {
	for _, tok := range toks {
		if !tok.IsPrimitive() {
			if !tok.IsSilentComment() {
				pterm.Info.Println(string(tok))
			}
			continue
		}
		if err := d.applyPrimitive(tok); err != nil {
			return err
		}
	}
	return nil
}

// applyPrimitive mutates the live world by one arm primitive, rejecting
// an action token that is illegal in the current state (§7: "Execution
// failure... Fatal to the current plan").
func (d *driver) applyPrimitive(tok shrdlite.ActionToken) error {
	w := d.world
	switch tok {
	case shrdlite.Left:
		if w.Arm == 0 {
			return fmt.Errorf("execution failure: the arm is already at the leftmost column")
		}
		w.Arm--
	case shrdlite.Right:
		if w.Arm >= len(w.Stacks)-1 {
			return fmt.Errorf("execution failure: the arm is already at the rightmost column")
		}
		w.Arm++
	case shrdlite.Pick:
		if w.Holding != world.Empty {
			return fmt.Errorf("execution failure: already holding something")
		}
		if w.IsEmptyColumn(w.Arm) {
			return fmt.Errorf("execution failure: nothing to pick up in this column")
		}
		top := w.Top(w.Arm)
		w.Stacks[w.Arm] = w.Stacks[w.Arm][:len(w.Stacks[w.Arm])-1]
		w.Holding = top
	case shrdlite.Drop:
		if w.Holding == world.Empty {
			return fmt.Errorf("execution failure: not holding anything")
		}
		dest := w.Top(w.Arm)
		if dest == world.Empty {
			dest = shrdlite.Floor
		}
		if !world.CanPlace(w, w.Holding, dest) {
			return fmt.Errorf("execution failure: cannot place %s onto %s", w.Holding, dest)
		}
		w.Stacks[w.Arm] = append(w.Stacks[w.Arm], w.Holding)
		w.Holding = world.Empty
	}
	return nil
}

// We use pterm for clarification questions, plan annotations, and errors.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
