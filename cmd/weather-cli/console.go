package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"weather-hunt/internal/domain/model"
	"weather-hunt/internal/domain/usecase/weather"
)

const help = `commands:
  query <text>   set the location text
  search         list matching locations
  select <n>     pick suggestion n
  dismiss        hide the suggestions
  weather        show the current weather
  quit`

// console drives one lookup controller from line commands and renders its state as text.
type console struct {
	uc  weather.UseCase
	out io.Writer
}

func newConsole(uc weather.UseCase, out io.Writer) *console {
	return &console{uc: uc, out: out}
}

// run reads commands until EOF, quit, or ctx is done.
func (c *console) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(c.out, help)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil || !c.exec(ctx, scanner.Text()) {
			return nil
		}
	}
}

// exec runs one command and reports whether the loop should continue.
func (c *console) exec(ctx context.Context, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "":
		return true
	case "quit", "exit":
		return false
	case "query":
		c.render(c.uc.SetQuery(arg))
	case "search":
		state, _ := c.uc.Search(ctx)
		c.render(state)
	case "select":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(c.out, "select needs a number")
			return true
		}
		state, err := c.uc.SelectSuggestion(n - 1)
		if err != nil {
			fmt.Fprintf(c.out, "no suggestion %d\n", n)
			return true
		}
		c.render(state)
	case "dismiss":
		c.render(c.uc.DismissSuggestions())
	case "weather":
		state, _ := c.uc.GetWeather(ctx)
		c.render(state)
	default:
		fmt.Fprintln(c.out, help)
	}
	return true
}

func (c *console) render(state model.LookupState) {
	switch state.Phase {
	case model.PhaseErrorShown:
		fmt.Fprintf(c.out, "error: %s\n", state.Error.Message)
	case model.PhaseResultShown:
		fmt.Fprintln(c.out, state.Weather.Display)
		if state.Weather.IconURL != "" {
			fmt.Fprintf(c.out, "icon: %s\n", state.Weather.IconURL)
		}
	case model.PhaseSuggestionsShown:
		if len(state.Suggestions) == 0 {
			fmt.Fprintln(c.out, "no matching locations")
			return
		}
		for i, s := range state.Suggestions {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, s.DisplayName)
		}
	default:
		fmt.Fprintf(c.out, "query: %q\n", state.Query)
	}
}
