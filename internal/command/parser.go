// Package command translates textual key tokens into game commands. It is the
// keyboard map of the terminal front end: one token per key press, separated
// by whitespace, with a few word-level conveniences for scripts.
package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dyluth/xword/internal/game"
)

// ErrQuit is returned when the input asks to end the session.
var ErrQuit = errors.New("quit requested")

// commentPrefix starts a comment that runs to the end of the line.
const commentPrefix = "#"

var keys = map[string]game.Command{
	"left":  game.Move(game.Left),
	"right": game.Move(game.Right),
	"up":    game.Move(game.Up),
	"down":  game.Move(game.Down),

	// Modified right/down arrows toggle the typing direction. Modified
	// left/up arrows behave like the plain arrows.
	"shift+right": game.Toggle(),
	"ctrl+right":  game.Toggle(),
	"shift+down":  game.Toggle(),
	"ctrl+down":   game.Toggle(),
	"shift+left":  game.Move(game.Left),
	"ctrl+left":   game.Move(game.Left),
	"shift+up":    game.Move(game.Up),
	"ctrl+up":     game.Move(game.Up),
	"toggle":      game.Toggle(),

	"backspace": game.Clear(),
	"space":     game.Clear(),
	"clear":     game.Clear(),
}

// A lone "q" types the letter Q, so quitting needs the full word.
var quitTokens = map[string]bool{
	"quit": true,
	"exit": true,
}

// ParseToken converts a single key token to a command. Supported forms:
//   - arrows: "left", "right", "up", "down"
//   - toggling: "toggle", "shift+right", "ctrl+down" (and the other modifier pairs)
//   - clearing: "backspace", "space", "clear"
//   - a single character, typed upper-cased
//
// Tokens are case-insensitive except for single characters, which are
// upper-cased anyway.
func ParseToken(tok string) (game.Command, error) {
	if tok == "" {
		return game.Command{}, fmt.Errorf("empty key token")
	}

	if utf8.RuneCountInString(tok) == 1 {
		ch, _ := utf8.DecodeRuneInString(tok)
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			return game.Command{}, fmt.Errorf("cannot type %q: only letters and digits are accepted", tok)
		}
		return game.Type(unicode.ToUpper(ch)), nil
	}

	lower := strings.ToLower(tok)
	if quitTokens[lower] {
		return game.Command{}, ErrQuit
	}
	if cmd, ok := keys[lower]; ok {
		return cmd, nil
	}

	return game.Command{}, fmt.Errorf("unknown key: %s (use an arrow name, toggle, clear, a letter, or 'type WORD')", tok)
}

// ParseLine converts a line of whitespace-separated tokens to commands.
// "type WORD" expands to one TypeLetter per character of WORD. Everything
// after a '#' is ignored.
//
// If the line contains a quit token, the commands before it are returned
// together with ErrQuit.
func ParseLine(line string) ([]game.Command, error) {
	if i := strings.Index(line, commentPrefix); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	cmds := make([]game.Command, 0, len(fields))

	for i := 0; i < len(fields); i++ {
		tok := fields[i]

		if strings.EqualFold(tok, "type") {
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("'type' needs a word to type")
			}
			i++
			word, err := typeWord(fields[i])
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, word...)
			continue
		}

		cmd, err := ParseToken(tok)
		if errors.Is(err, ErrQuit) {
			return cmds, ErrQuit
		}
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

func typeWord(word string) ([]game.Command, error) {
	cmds := make([]game.Command, 0, len(word))
	for _, ch := range word {
		cmd, err := ParseToken(string(ch))
		if err != nil {
			return nil, fmt.Errorf("failed to type %q: %w", word, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
