package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/middleearth/internal/battle"
	"github.com/osse101/middleearth/internal/domain"
)

// Console is a line-oriented terminal. It serves both the command loop and battle prompts,
// so both read from one reader.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

var (
	_ battle.ActionProvider = (*Console)(nil)
	_ battle.Narrator       = (*Console)(nil)
)

// New creates a console over the given streams
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and returns the next trimmed line.
// It returns io.EOF when input is exhausted. A line longer than MaxLineLength
// is consumed whole and reported as domain.ErrInvalidAction.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	var line []byte
	tooLong := false
	for {
		chunk, err := c.in.ReadSlice('\n')
		if !tooLong && len(line)+len(chunk) <= MaxLineLength {
			line = append(line, chunk...)
		} else {
			tooLong = true
			line = nil
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && !tooLong && len(line) == 0 {
			return "", io.EOF
		}
		break
	}

	if tooLong {
		return "", fmt.Errorf("%w: input longer than %d bytes", domain.ErrInvalidAction, MaxLineLength)
	}
	return strings.TrimSpace(string(line)), nil
}

// Printf writes one formatted line
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// Println writes one line
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Narrate writes a battle line
func (c *Console) Narrate(_ context.Context, line battle.Line) {
	c.Println(line.Text)
}

// NextAction shows the battle state and reads one action
func (c *Console) NextAction(_ context.Context, prompt battle.Prompt) (domain.Action, error) {
	c.Printf(MsgRoundHeader, prompt.Round, prompt.PlayerHP, prompt.MaxHP)
	for _, m := range prompt.Monsters {
		c.Printf(MsgBattleLine, m.Name, m.HP)
	}
	c.Println(prompt.Text)

	line, err := c.ReadLine(ActionPrompt)
	if err != nil {
		return "", err
	}
	return ParseAction(line)
}

// ParseAction maps player input to a battle action
func ParseAction(s string) (domain.Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fight", "f", "attack", "a":
		return domain.ActionFight, nil
	case "run", "r", "flee":
		return domain.ActionRun, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAction, s)
	}
}
